package server

import (
	"net/http"
	"strings"
)

// securityHeaders are set on every response
var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
}

func isAPI(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, APIPrefix+"/")
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes. Decoding a
// larger body fails and the handler answers 400.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware opens /api to the browser UI from any origin and answers
// preflight requests itself. Other paths are untouched.
func CORSMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isAPI(r) {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set(HeaderAllowOrigin, CORSAllowOrigin)
			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h.Set(HeaderAllowMethods, CORSAllowMethods)
			h.Set(HeaderAllowHeaders, CORSAllowHeaders)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

// SecurityHeadersMiddleware sets the fixed security headers. API responses
// are also marked uncacheable since every read reflects live game state.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range securityHeaders {
				h.Set(kv[0], kv[1])
			}
			if isAPI(r) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}
			next.ServeHTTP(w, r)
		})
	}
}
