// Package ui renders command lifecycle events for human consumption.
//
// It adapts execshell.CommandEventObserver notifications into console-friendly
// log lines so operators can follow the external tools the hook runner drives.
package ui
