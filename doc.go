// Package perfchart prepares portfolio performance series for charting.
//
// The API supplies dated rows (portfolio value, time and money weighted
// returns, drawdown) and benchmark series. Before they can be drawn:
//   - rows dated on non trading days are dropped (see package calendar),
//   - the display window is rebased so that it starts at 0% and its drawdown
//     is measured from its own peak,
//   - benchmarks are rebased onto the first date they share with the portfolio
//     and carried forward across the dates they miss,
//   - the renderer asks where an area crosses zero for its two color fill, and
//     where to put end of line labels so that they do not overlap.
//
// Every function is pure: inputs are never modified and nothing is retained
// but the calendar's holiday cache.
package perfchart
