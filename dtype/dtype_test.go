package dtype_test

import (
	"fmt"
	"reflect"

	"ndarray-bridge/dtype"
)

func Example() {
	type Celsius float64

	fmt.Println(dtype.FromType(reflect.TypeOf(float32(0))))
	fmt.Println(dtype.FromType(reflect.TypeOf(byte(0))))
	fmt.Println(dtype.Lookup("int16"))
	fmt.Println(dtype.TagFor(reflect.TypeOf(true)))
	fmt.Println(dtype.FromType(reflect.TypeOf(Celsius(0))))
	fmt.Println(dtype.Lookup("flaot64"))
	// Output:
	// Float32 <nil>
	// Uint8 <nil>
	// Int16 <nil>
	// bool <nil>
	// DType(0) unsupported dtype: native type dtype_test.Celsius
	// DType(0) unsupported dtype: "flaot64" (did you mean "float64"?)
}
