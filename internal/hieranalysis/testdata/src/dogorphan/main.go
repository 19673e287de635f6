package main

import "fmt"

type Animal struct{}

type Dog struct { // want `'Dog' does not extend 'Animal'`
	name string
}

func (Dog) speak() { fmt.Println("Woof") }

type Cat struct{ Animal }

func (Cat) speak() { fmt.Println("Meow") }

func main() {
	Dog{}.speak()
	Cat{}.speak()
}
