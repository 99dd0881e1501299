package platform

// Package platform contains OS integration glue: opening links in the system
// browser and parsing YouTube tutorial links.
