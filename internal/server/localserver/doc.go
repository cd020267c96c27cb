// Package localserver serves the admin surface on a Unix domain
// socket for local management.
//
// The same admin handlers available on the TCP listener are reachable
// through the socket, so operators on the box can hit /stats,
// /quitquitquit and friends with curl --unix-socket even when the TCP
// admin port is firewalled. File system permissions on the socket
// control access; there is no additional authentication.
package localserver
