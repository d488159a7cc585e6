// Package processor wires the prompt pipeline together: it joins fixed text
// and keywords, runs the source formatting pass, translates once and formats
// the result. It drives both the headless command line mode and the GUI.
package processor
