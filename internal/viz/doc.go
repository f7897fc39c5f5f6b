// Package viz is the interactive terminal host for the sorting charts.
//
// [Model] is a Bubble Tea model that keeps one chart per algorithm in a
// scrollable column. Only charts inside the visible window are stepped
// unless run-off-screen is enabled. Two tick streams drive it: a step tick
// at the configured interval and a frame tick that advances the bar
// springs.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R V M - New random, reversed or mostly ordered dataset
//	+ -   - More or fewer bars
//	[ ]   - Faster or slower steps
//	C     - Toggle rainbow colours
//	O     - Toggle running off screen
//	T     - Cycle colour themes
//	E     - Export every chart as one SVG
//	↑ ↓   - Scroll the chart column
//	?     - Show full help
//	Q     - Quit
package viz
