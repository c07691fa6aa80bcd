// Package ui computes what the display surfaces show: localized labels,
// analysis result rows, the greeting and inline error text. Everything
// here is pure, so the terminal and browser front ends render the same
// view models.
package ui
