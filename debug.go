package main

import "log"

// debugEnabled is set from the -debug flag in main.
var debugEnabled bool

// debugLog logs diagnostic messages when debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("Debug: "+format, args...)
	}
}
