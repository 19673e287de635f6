package main

import "fmt"

type Animal struct{}

type Dog struct{ *Animal }

func (*Dog) speak() { fmt.Println("Woof") }

type Cat struct{} // want `'Cat' does not extend 'Animal'`

func (*Cat) speak() { fmt.Println("Meow") }

func main() {
	(&Dog{}).speak()
	(&Cat{}).speak()
}
