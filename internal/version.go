package internal

// Version is the sdprompt release version
const Version = "0.3.0"
