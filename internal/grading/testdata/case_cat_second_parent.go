package main

import (
	"fmt"
	"sync"
)

type Animal struct{}

type Dog struct {
	*Animal
}

func (*Dog) speak() { fmt.Println("The dog barks.") }

type Cat struct {
	sync.Mutex
	Animal
}

func (*Cat) speak() { fmt.Println("The cat meows.") }

func main() {
	(&Dog{}).speak()
	(&Cat{}).speak()
}
