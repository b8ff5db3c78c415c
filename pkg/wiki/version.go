package wiki

// Version is the kpalwiki module version.
const Version = "0.1.0"
