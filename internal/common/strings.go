package common

// UnknownStr is printed for enum values outside their defined range.
const UnknownStr = "unknown"
