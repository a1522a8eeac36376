package internal

// Version is the current palabra release
const Version = "0.1.0"
