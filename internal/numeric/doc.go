// Package numeric holds the Fibonacci and factorial functions.
//
// Every function returns a freshly allocated *big.Int and performs no input
// validation: negative arguments produce whatever the recurrence or loop
// yields for them.
package numeric
