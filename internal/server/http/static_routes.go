package httpserver

import (
	"net/http"
	"strings"
)

const viewCookieName = "chessgame_view"

const (
	viewDesktop = "desktop"
	viewMobile  = "mobile"
)

var viewPrefix = map[string]string{
	viewDesktop: "/web/",
	viewMobile:  "/web_mobile/",
}

var mobileAgents = []string{"android", "iphone", "ipad", "ipod", "mobile", "windows phone"}

// RegisterStaticRoutes serves the board client from desktopDir under /web/
// and mobileDir under /web_mobile/, and redirects / to whichever view the
// ?view= override, the view cookie or the User-Agent picks.
func RegisterStaticRoutes(mux *http.ServeMux, desktopDir, mobileDir string) {
	if mux == nil {
		return
	}
	if desktopDir == "" {
		desktopDir = "."
	}
	if mobileDir == "" {
		mobileDir = desktopDir
	}
	for view, dir := range map[string]string{viewDesktop: desktopDir, viewMobile: mobileDir} {
		prefix := viewPrefix[view]
		mux.Handle(prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(dir))))
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			if prefix := r.URL.Path + "/"; prefix == viewPrefix[viewDesktop] || prefix == viewPrefix[viewMobile] {
				http.Redirect(w, r, prefix, http.StatusFound)
				return
			}
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Vary", "User-Agent, Cookie")
		http.Redirect(w, r, viewPrefix[pickView(w, r)], http.StatusFound)
	})
}

func pickView(w http.ResponseWriter, r *http.Request) string {
	if v, ok := normalizeView(r.URL.Query().Get("view")); ok {
		http.SetCookie(w, &http.Cookie{
			Name:     viewCookieName,
			Value:    v,
			Path:     "/",
			MaxAge:   30 * 24 * 60 * 60,
			SameSite: http.SameSiteLaxMode,
		})
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil {
		if v, ok := normalizeView(c.Value); ok {
			return v
		}
	}
	ua := strings.ToLower(r.UserAgent())
	for _, n := range mobileAgents {
		if strings.Contains(ua, n) {
			return viewMobile
		}
	}
	return viewDesktop
}

func normalizeView(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "web", "desktop", "pc":
		return viewDesktop, true
	case "mobile", "m", "phone", "web_mobile":
		return viewMobile, true
	}
	return "", false
}
