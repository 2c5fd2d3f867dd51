package platform

// Package platform contains OS integration helpers: filesystem utilities and
// checks for the external tools the app shells out to.
