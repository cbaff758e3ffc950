package probemap_test

import (
	"fmt"

	"github.com/homier/probemap"
)

func Example() {
	m := probemap.New[int](20)

	m.Put("key1", 10)
	fmt.Println(m.Len(), m.Capacity())

	m.Resize(30)
	v, ok := m.Get("key1")
	fmt.Println(m.Len(), m.Capacity(), v, ok)

	// Output:
	// 1 23
	// 1 31 10 true
}

func ExampleMap_Iter() {
	m := probemap.New[string](10, probemap.WithHashFunc(probemap.HashFunction1))

	for i := range 5 {
		m.Put(fmt.Sprint(i), fmt.Sprint(i*10))
	}
	m.Remove("2")

	for it := m.Iter(); it.Next(); {
		fmt.Println("K:", it.Key(), "V:", it.Value())
	}

	// Output:
	// K: 0 V: 0
	// K: 1 V: 10
	// K: 3 V: 30
	// K: 4 V: 40
}

func ExampleMap_String() {
	m := probemap.New[int](3, probemap.WithHashFunc(probemap.HashFunction1))

	m.Put("a", 1)
	fmt.Print(m)

	// Output:
	// 0: None
	// 1: K: a V: 1 TS: false
	// 2: None
}
