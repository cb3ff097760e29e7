package base58_test

import (
	"fmt"

	"github.com/lbryio/base58.go/address/base58"
)

// This example demonstrates how to encode data using the modified base58 encoding scheme.
func ExampleEncode() {
	encoded := base58.Encode([]byte("Test data"))
	fmt.Println("Encoded Data:", encoded)

	// Output:
	// Encoded Data: 25JnwSn7XKfNQ
}

// This example demonstrates how leading zero bytes survive a round trip.
func ExampleDecode() {
	decoded, err := base58.Decode("1Ldp")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Decoded Data: %x\n", decoded)

	// Output:
	// Decoded Data: 00010203
}

// This example demonstrates how to encode data using the Base58Check encoding scheme.
func ExampleCheckEncode() {
	encoded := base58.CheckEncode([]byte("Test data"))
	fmt.Println("Encoded Data:", encoded)

	// Output:
	// Encoded Data: 82iP79GRURMp7a2BhH
}

// This example demonstrates how to decode Base58Check encoded data.
func ExampleCheckDecode() {
	decoded, err := base58.CheckDecode("82iP79GRURMp7a2BhH")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Decoded Data:", string(decoded))

	// Output:
	// Decoded Data: Test data
}
