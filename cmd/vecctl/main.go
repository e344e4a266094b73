// Command vecctl exercises the vectorkit containers from the command line.
package main

func main() {
	execute()
}
