package tokeninfo

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/testutils"
	"github.com/pkg/errors"
)

func TestDecodeUSDCoin(t *testing.T) {
	info, err := Decode(testutils.USDCoinPayload())
	if err != nil {
		t.Fatalf("Decode: %+v", err)
	}
	expected := &TokenInfo{
		Decimals: 6,
		Name:     "USD Coin",
		Symbol:   "USDC",
		Extra: []string{
			"Totalsupply:10000000.000000",
			"Offical Site:https://www.centre.io/",
			"Description:xxxx",
		},
	}
	if !reflect.DeepEqual(info, expected) {
		t.Fatalf("Decode returned %s, want %s", spew.Sdump(info), spew.Sdump(expected))
	}
	if info.String() != "USD Coin (USDC), 6 decimals" {
		t.Fatalf("unexpected String() %q", info)
	}
}

func TestDecodeKeepsEmptyFields(t *testing.T) {
	info, err := Decode([]byte("\x00\n\n\n"))
	if err != nil {
		t.Fatalf("Decode: %+v", err)
	}
	expected := &TokenInfo{Decimals: 0, Name: "", Symbol: "", Extra: []string{""}}
	if !reflect.DeepEqual(info, expected) {
		t.Fatalf("Decode returned %s", spew.Sdump(info))
	}
}

func TestDecodeRejectsMalformedData(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("\x06\nUSD Coin"), []byte("18\nToken\nTKN")} {
		if _, err := Decode(data); !errors.Is(err, ruleerrors.ErrWrongDataStruct) {
			t.Fatalf("Decode(%q): expected ErrWrongDataStruct, got %v", data, err)
		}
	}
}

func TestEncode(t *testing.T) {
	payload := testutils.USDCoinPayload()
	info, err := Decode(payload)
	if err != nil {
		t.Fatalf("Decode: %+v", err)
	}
	if encoded := info.Encode(); string(encoded) != string(payload) {
		t.Fatalf("Encode returned %q, want %q", encoded, payload)
	}
}
