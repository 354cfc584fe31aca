package gantry

// Version is the current Gantry release.
const Version = "0.2.0"
