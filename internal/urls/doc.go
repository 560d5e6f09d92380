// Package urls holds the documentation links printed by tvremote.
package urls
