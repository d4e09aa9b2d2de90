// Package plot renders analysed curves as interactive HTML charts.
//
// The raw curve is drawn as a line. The maximum, the hyper point, the first
// peak and the valley are overlaid as markers, and the integrated segment is
// shaded with its area in the series name.
package plot
