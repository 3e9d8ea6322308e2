package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/hashes"
	"github.com/pkg/errors"
)

func testScript(args []byte) *externalapi.Script {
	var codeHash [externalapi.DomainHashSize]byte
	for i := range codeHash {
		codeHash[i] = byte(i)
	}
	return &externalapi.Script{
		CodeHash: *externalapi.NewDomainHashFromByteArray(&codeHash),
		HashType: externalapi.ScriptHashTypeType,
		Args:     args,
	}
}

func TestSerializeScriptLayout(t *testing.T) {
	script := testScript([]byte{0xaa, 0xbb, 0xcc})
	serialized := SerializeScript(script)

	wantSize := 16 + 32 + 1 + 4 + 3
	if len(serialized) != wantSize {
		t.Fatalf("serialized script is %d bytes, want %d", len(serialized), wantSize)
	}
	header := []uint32{uint32(wantSize), 16, 48, 49}
	for i, want := range header {
		if got := binary.LittleEndian.Uint32(serialized[4*i:]); got != want {
			t.Fatalf("header word %d is %d, want %d", i, got, want)
		}
	}
	if serialized[48] != byte(externalapi.ScriptHashTypeType) {
		t.Fatalf("hash type byte is %d", serialized[48])
	}
	if !bytes.Equal(serialized[49:], []byte{3, 0, 0, 0, 0xaa, 0xbb, 0xcc}) {
		t.Fatalf("args are encoded as %x", serialized[49:])
	}

	deserialized, err := DeserializeScript(serialized)
	if err != nil {
		t.Fatalf("DeserializeScript: %+v", err)
	}
	if !deserialized.Equal(script) {
		t.Fatalf("DeserializeScript returned %s, want %s", spew.Sdump(deserialized), spew.Sdump(script))
	}
}

func TestDeserializeScriptRejectsMalformed(t *testing.T) {
	valid := SerializeScript(testScript([]byte{1}))

	truncated := valid[:len(valid)-1]
	wrongFieldCount := append([]byte(nil), valid[:12]...)
	binary.LittleEndian.PutUint32(wrongFieldCount, 12)
	binary.LittleEndian.PutUint32(wrongFieldCount[4:], 12)
	binary.LittleEndian.PutUint32(wrongFieldCount[8:], 12)
	wrongArgsLength := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(wrongArgsLength[49:], 7)
	unknownHashType := append([]byte(nil), valid...)
	unknownHashType[48] = 9

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated", truncated},
		{"two fields", wrongFieldCount},
		{"args length", wrongArgsLength},
		{"unknown hash type", unknownHashType},
	}
	for _, test := range tests {
		_, err := DeserializeScript(test.data)
		if !errors.Is(err, ruleerrors.ErrEncoding) && !errors.Is(err, ruleerrors.ErrLengthNotEnough) {
			t.Errorf("%s: expected an encoding error, got %v", test.name, err)
		}
	}
}

func TestScriptHashMatchesChain(t *testing.T) {
	codeHash, err := hex.DecodeString("9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce8")
	if err != nil {
		t.Fatal(err)
	}
	args, err := hex.DecodeString("b39bbc0b3673c7d36450bc14cfcdad2d559c6c64")
	if err != nil {
		t.Fatal(err)
	}
	domainCodeHash, err := externalapi.NewDomainHashFromByteSlice(codeHash)
	if err != nil {
		t.Fatal(err)
	}
	script := &externalapi.Script{CodeHash: *domainCodeHash, HashType: externalapi.ScriptHashTypeType, Args: args}

	expectedSerialization := "490000001000000030000000310000009bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a86" +
		"37b17723bbda3cce80114000000b39bbc0b3673c7d36450bc14cfcdad2d559c6c64"
	if serialized := hex.EncodeToString(SerializeScript(script)); serialized != expectedSerialization {
		t.Fatalf("SerializeScript is %s, want %s", serialized, expectedSerialization)
	}
	expectedHash := "e203d8260a0eb9d0ec8f69976e2108d9e50d0c8fb1920a67d10d61cb9993e284"
	hash := hashes.Blake2bHasher{}.Hash(SerializeScript(script))
	if hash.String() != expectedHash {
		t.Fatalf("script hash is %s, want %s", hash, expectedHash)
	}
}

func TestCellSerialization(t *testing.T) {
	tests := []*externalapi.Cell{
		{Capacity: 829, Lock: testScript(nil)},
		{Capacity: 170, Lock: testScript(nil), Type: testScript([]byte("owner")), Data: []byte("\x06\nUSD Coin\nUSDC")},
	}
	for i, cell := range tests {
		deserialized, err := DeserializeCell(SerializeCell(cell))
		if err != nil {
			t.Fatalf("test #%d: DeserializeCell: %+v", i, err)
		}
		if deserialized.Capacity != cell.Capacity || !bytes.Equal(SerializeCellOutput(deserialized), SerializeCellOutput(cell)) {
			t.Fatalf("test #%d: cell output changed across serialization", i)
		}
		if deserialized.Capacity != cell.Capacity || !deserialized.Lock.Equal(cell.Lock) ||
			!deserialized.Type.Equal(cell.Type) || !bytes.Equal(deserialized.Data, cell.Data) {
			t.Fatalf("test #%d: got %s, want %s", i, spew.Sdump(deserialized), spew.Sdump(cell))
		}
	}
}

func TestDeserializeCellRejectsMalformed(t *testing.T) {
	valid := SerializeCell(&externalapi.Cell{Capacity: 61, Lock: testScript(nil), Data: []byte{1}})
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated", valid[:len(valid)-1]},
		{"bare script", SerializeScript(testScript(nil))},
	}
	for _, test := range tests {
		_, err := DeserializeCell(test.data)
		if !errors.Is(err, ruleerrors.ErrEncoding) {
			t.Errorf("%s: expected an encoding error, got %v", test.name, err)
		}
	}
}

func TestSerializeOutPoint(t *testing.T) {
	var txHash [externalapi.DomainHashSize]byte
	txHash[0] = 0xff
	serialized := SerializeOutPoint(&externalapi.OutPoint{
		TxHash: *externalapi.NewDomainHashFromByteArray(&txHash),
		Index:  258,
	})
	if len(serialized) != 36 || serialized[0] != 0xff || serialized[32] != 2 || serialized[33] != 1 {
		t.Fatalf("unexpected outpoint encoding %x", serialized)
	}
}
