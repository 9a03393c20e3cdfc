package htmx

import "net/http"

// Redirect sends HX-Redirect to htmx requests and a 302 to everything else.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	RedirectWithStatus(w, r, url, http.StatusFound)
}

// RedirectWithStatus is Redirect with a custom status for non-htmx requests.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, targetURL string, status int) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, targetURL)
		// htmx only follows HX-Redirect on a 2xx response
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, targetURL, status)
}

// Location sends HX-Location to htmx requests, which navigates without a full
// reload, and a 302 to everything else.
func Location(w http.ResponseWriter, r *http.Request, path string) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXLocation, path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusFound)
}
