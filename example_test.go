package bitv_test

import (
	"fmt"
	"log"

	"github.com/damiendoligez/bitv"
)

func ExampleNew() {
	v, err := bitv.New(10, false)
	if err != nil {
		log.Fatal(err)
	}

	if err := v.Set(3, true); err != nil {
		log.Fatal(err)
	}

	fmt.Println(v)
	// Output: 0001000000
}

func ExampleFromString() {
	v, err := bitv.FromString("1100")
	if err != nil {
		log.Fatal(err)
	}

	b, _ := v.Get(0)
	fmt.Println(v.Len(), b)
	// Output: 4 true
}

func ExampleBitVector_And() {
	a, _ := bitv.FromString("1100")
	b, _ := bitv.FromString("1010")

	and, err := a.And(b)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(and)
	// Output: 1000
}

func ExampleBitVector_Sub() {
	v, _ := bitv.FromString("110110")

	s, err := v.Sub(1, 4)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(s)
	// Output: 1011
}

func ExampleBitVector_Ones() {
	v, _ := bitv.FromString("0110001")

	for i := range v.Ones() {
		fmt.Println(i)
	}
	// Output:
	// 1
	// 2
	// 6
}

func ExampleFoldLeft() {
	v, _ := bitv.FromString("10110")

	ones := bitv.FoldLeft(v, 0, func(acc int, b bool) int {
		if b {
			return acc + 1
		}
		return acc
	})

	fmt.Println(ones)
	// Output: 3
}
