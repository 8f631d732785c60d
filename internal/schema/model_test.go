package schema

import "fmt"

func ExampleTypeID_Short() {
	id := TypeID{PkgPath: "recdict/store", Name: "Order"}
	fmt.Println(id)
	fmt.Println(id.Short())
	fmt.Println(TypeID{Name: "Local"}.Short())
	// Output:
	// recdict/store.Order
	// store.Order
	// Local
}
