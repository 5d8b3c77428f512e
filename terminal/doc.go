// Package terminal is the tcell frontend. It rasterizes the simulation's draw
// commands onto a character grid and turns key events into held controls.
//
// Terminals report key presses and auto-repeats but no releases, so an action
// counts as held for a short window after its last key event.
package terminal
