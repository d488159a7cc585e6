// Package prompt turns keyword lines into weighted, parenthesized prompt
// strings for image-generation tools. A keyword line may carry a weight after
// its last colon ("base:weight"), which is passed through without validation.
package prompt
