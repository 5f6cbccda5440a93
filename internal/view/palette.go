// internal/view/palette.go
package view

// ColorPalette is the set ChangeColor samples from, in order.
var ColorPalette = [...]string{"red", "orange", "yellow", "green", "blue"}

// LegacyColors shipped alongside ColorPalette but ChangeColor never reads it.
// Which of the two should drive the color change is unresolved.
var LegacyColors = [...]string{"#D92B6A", "#9564F2", "#FFCF59"}
