package clientip

import (
	"net"
	"net/http"
	"strings"
)

var headers = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the normalized client IP for r.
func GetIP(r *http.Request) string {
	for _, h := range headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		if h == "X-Forwarded-For" {
			v, _, _ = strings.Cut(v, ",")
		}
		if ip := parse(v); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := parse(host); ip != "" {
		return ip
	}
	return host
}

func parse(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
