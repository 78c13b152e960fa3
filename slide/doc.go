// See slide.go for the Slider type and the forward-swap-then-choose-stop
// algorithm it implements.
package slide
