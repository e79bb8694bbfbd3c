package common

// UnknownStr is the fallback name for values outside their enumeration.
const UnknownStr = "unknown"
