// Command icetok is the command-line driver for the icetok tokenization
// library: tokenize text files into a classified token stream, or
// reassemble sentences from one.
package main

func main() {
	Execute()
}
