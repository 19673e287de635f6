package main

import "fmt"

type Animal struct{}

func (Animal) speak() { fmt.Println("The animal makes a sound.") }

type Dog struct{ Animal }

type Cat struct{ Animal }

func main() {
	Dog{}.speak()
	Cat{}.speak()
}
