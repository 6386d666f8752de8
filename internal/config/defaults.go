package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		UnicodePieces: true,
		Colors: ConfigColors{
			LightSquare: 180,
			DarkSquare:  94,
			WhitePiece:  255,
			BlackPiece:  232,
			Selected:    3,
			Destination: 2,
			Check:       1,
			Cursor:      4,
		},
		Symbols: ConfigSymbols{
			Destination: '•',
			Empty:       ' ',
		},
	}

	DefaultConfig = Config{
		Server: ServerConfig{
			Addr:        ":2888",
			WebDir:      "./web",
			OpenBrowser: true,
		},
		Clock: ClockConfig{TurnSeconds: 60},
		Records: RecordsConfig{
			WhitePlayer: "White",
			BlackPlayer: "Black",
		},
		Theme: DefaultTheme,
	}
}
