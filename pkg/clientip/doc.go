// Package clientip extracts the client IP address from an HTTP request.
//
// Headers are checked in order, and the first one carrying a valid address wins:
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Addresses are parsed and normalized with net.ParseIP; 0.0.0.0 and the IPv6
// unspecified address are rejected. When nothing valid is found GetIP falls
// back to the host part of RemoteAddr, or RemoteAddr as is.
//
// Only trust forwarding headers when the service sits behind a proxy that
// overwrites them; otherwise clients can choose their own rate limit key.
package clientip
