// See matcher.go for the Matcher type and the five-pass calculate_diff
// algorithm it implements.
package match
