package sui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/feral-file/ff-journal/internal/domain"
)

// ObjectDigestLength is the byte length of object and transaction digests
const ObjectDigestLength = 32

// Address is a 32 byte account address or object id
type Address [domain.AddressLength]byte

// ParseAddress parses a hex address, short forms included
func ParseAddress(s string) (Address, error) {
	b, err := domain.AddressBytes(s)
	return Address(b), err
}

// String returns the canonical 0x-prefixed form
func (a Address) String() string {
	return domain.AddressFromBytes(a)
}

// ObjectRef is a reference to a specific object version
type ObjectRef struct {
	ObjectID Address
	Version  uint64
	Digest   []byte
}

// NewObjectRef builds an object reference from its RPC representation
func NewObjectRef(objectID string, version uint64, digest string) (ObjectRef, error) {
	id, err := ParseAddress(objectID)
	if err != nil {
		return ObjectRef{}, err
	}
	d, err := base58.Decode(digest)
	if err != nil {
		return ObjectRef{}, fmt.Errorf("invalid object digest %q: %w", digest, err)
	}
	if len(d) != ObjectDigestLength {
		return ObjectRef{}, fmt.Errorf("invalid object digest length %d", len(d))
	}
	return ObjectRef{ObjectID: id, Version: version, Digest: d}, nil
}

// TypeTagKind is the variant index of a Move type tag
type TypeTagKind uint8

const (
	TypeTagBool TypeTagKind = iota
	TypeTagU8
	TypeTagU64
	TypeTagU128
	TypeTagAddress
	TypeTagSigner
	TypeTagVector
	TypeTagStruct
	TypeTagU16
	TypeTagU32
	TypeTagU256
)

var primitiveTypeNames = map[TypeTagKind]string{
	TypeTagBool:    "bool",
	TypeTagU8:      "u8",
	TypeTagU64:     "u64",
	TypeTagU128:    "u128",
	TypeTagAddress: "address",
	TypeTagSigner:  "signer",
	TypeTagU16:     "u16",
	TypeTagU32:     "u32",
	TypeTagU256:    "u256",
}

// TypeTag is a Move type. Vector and Struct are set for their respective kinds only.
type TypeTag struct {
	Kind   TypeTagKind
	Vector *TypeTag
	Struct *StructTag
}

// StructTag is a fully-qualified Move struct type
type StructTag struct {
	Address    Address
	Module     string
	Name       string
	TypeParams []TypeTag
}

func (t TypeTag) String() string {
	switch t.Kind {
	case TypeTagVector:
		return "vector<" + t.Vector.String() + ">"
	case TypeTagStruct:
		s := fmt.Sprintf("%s::%s::%s", t.Struct.Address, t.Struct.Module, t.Struct.Name)
		if len(t.Struct.TypeParams) > 0 {
			params := make([]string, len(t.Struct.TypeParams))
			for i, p := range t.Struct.TypeParams {
				params[i] = p.String()
			}
			s += "<" + strings.Join(params, ", ") + ">"
		}
		return s
	default:
		return primitiveTypeNames[t.Kind]
	}
}

// ArgumentKind is the variant index of a command argument
type ArgumentKind uint8

const (
	ArgumentGasCoin ArgumentKind = iota
	ArgumentInput
	ArgumentResult
	ArgumentNestedResult
)

// Argument refers to the gas coin, an input, or the result of a previous command
type Argument struct {
	Kind        ArgumentKind
	Index       uint16
	ResultIndex uint16
}

// ObjectArgKind is the variant index of an object input
type ObjectArgKind uint8

const (
	ObjectArgImmOrOwned ObjectArgKind = iota
	ObjectArgShared
	ObjectArgReceiving
)

// ObjectArg is an object input. Ref is used by owned and receiving objects, the
// shared fields by shared objects.
type ObjectArg struct {
	Kind                 ObjectArgKind
	Ref                  ObjectRef
	ObjectID             Address
	InitialSharedVersion uint64
	Mutable              bool
}

// CallArg is a transaction input: either pure bytes or an object
type CallArg struct {
	Pure   []byte
	Object *ObjectArg
}

// Command is one step of a programmable transaction
type Command interface {
	// Name returns the command variant name
	Name() string
	tag() uint64
	encode(e *Encoder)
}

// MoveCall invokes a Move function
type MoveCall struct {
	Package       Address
	Module        string
	Function      string
	TypeArguments []TypeTag
	Arguments     []Argument
}

// Target returns package::module::function with the package in canonical form
func (c *MoveCall) Target() string {
	return fmt.Sprintf("%s::%s::%s", c.Package, c.Module, c.Function)
}

type TransferObjects struct {
	Objects []Argument
	Address Argument
}

type SplitCoins struct {
	Coin    Argument
	Amounts []Argument
}

type MergeCoins struct {
	Destination Argument
	Sources     []Argument
}

type Publish struct {
	Modules      [][]byte
	Dependencies []Address
}

type MakeMoveVec struct {
	Type     *TypeTag
	Elements []Argument
}

type Upgrade struct {
	Modules      [][]byte
	Dependencies []Address
	Package      Address
	Ticket       Argument
}

func (*MoveCall) Name() string        { return "MoveCall" }
func (*TransferObjects) Name() string { return "TransferObjects" }
func (*SplitCoins) Name() string      { return "SplitCoins" }
func (*MergeCoins) Name() string      { return "MergeCoins" }
func (*Publish) Name() string         { return "Publish" }
func (*MakeMoveVec) Name() string     { return "MakeMoveVec" }
func (*Upgrade) Name() string         { return "Upgrade" }

func (*MoveCall) tag() uint64        { return 0 }
func (*TransferObjects) tag() uint64 { return 1 }
func (*SplitCoins) tag() uint64      { return 2 }
func (*MergeCoins) tag() uint64      { return 3 }
func (*Publish) tag() uint64         { return 4 }
func (*MakeMoveVec) tag() uint64     { return 5 }
func (*Upgrade) tag() uint64         { return 6 }

// ProgrammableTransaction is the only transaction kind users can submit
type ProgrammableTransaction struct {
	Inputs   []CallArg
	Commands []Command
}

// TransactionKind wraps a programmable transaction. System kinds are not supported.
type TransactionKind struct {
	Programmable *ProgrammableTransaction
}

// GasData names the gas payment coins, their owner, the gas price and the budget
type GasData struct {
	Payment []ObjectRef
	Owner   Address
	Price   uint64
	Budget  uint64
}

// TransactionExpiration is either none or an epoch number
type TransactionExpiration struct {
	Epoch *uint64
}

// TransactionData is the V1 transaction envelope that gets signed
type TransactionData struct {
	Kind       TransactionKind
	Sender     Address
	GasData    GasData
	Expiration TransactionExpiration
}

const (
	transactionDataV1Tag    = 0
	programmableKindTag     = 0
	transactionDigestPrefix = "TransactionData::"
)

// Marshal encodes the transaction data
func (t *TransactionData) Marshal() ([]byte, error) {
	if t.Kind.Programmable == nil {
		return nil, errors.New("transaction kind is not programmable")
	}
	e := NewEncoder()
	e.WriteULEB128(transactionDataV1Tag)
	encodeKind(e, &t.Kind)
	e.WriteFixed(t.Sender[:])
	encodeGasData(e, &t.GasData)
	encodeExpiration(e, &t.Expiration)
	return e.Bytes(), nil
}

// Digest returns the base58 transaction digest of the encoded data
func (t *TransactionData) Digest() (string, error) {
	b, err := t.Marshal()
	if err != nil {
		return "", err
	}
	return TransactionDigest(b), nil
}

// TransactionDigest hashes encoded transaction data into its base58 digest
func TransactionDigest(txBytes []byte) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(transactionDigestPrefix))
	h.Write(txBytes)
	return base58.Encode(h.Sum(nil))
}

// Marshal encodes the transaction kind alone
func (k *TransactionKind) Marshal() ([]byte, error) {
	if k.Programmable == nil {
		return nil, errors.New("transaction kind is not programmable")
	}
	e := NewEncoder()
	encodeKind(e, k)
	return e.Bytes(), nil
}

// UnmarshalTransactionData decodes transaction data. Trailing bytes are an error.
func UnmarshalTransactionData(b []byte) (*TransactionData, error) {
	d := NewDecoder(b)

	tag, err := d.ReadULEB128()
	if err != nil {
		return nil, err
	}
	if tag != transactionDataV1Tag {
		return nil, fmt.Errorf("unsupported transaction data version %d", tag)
	}

	t := &TransactionData{}
	if err := decodeKind(d, &t.Kind); err != nil {
		return nil, err
	}
	if err := decodeAddress(d, &t.Sender); err != nil {
		return nil, err
	}
	if err := decodeGasData(d, &t.GasData); err != nil {
		return nil, err
	}
	if err := decodeExpiration(d, &t.Expiration); err != nil {
		return nil, err
	}
	if d.Remaining() != 0 {
		return nil, fmt.Errorf("%d trailing bytes", d.Remaining())
	}
	return t, nil
}

// UnmarshalTransactionKind decodes bare transaction kind bytes. Trailing bytes are an error.
func UnmarshalTransactionKind(b []byte) (*TransactionKind, error) {
	d := NewDecoder(b)
	k := &TransactionKind{}
	if err := decodeKind(d, k); err != nil {
		return nil, err
	}
	if d.Remaining() != 0 {
		return nil, fmt.Errorf("%d trailing bytes", d.Remaining())
	}
	return k, nil
}

// ParseTransactionBytes accepts either full transaction data or bare kind bytes, as produced
// by wallets building with onlyTransactionKind. The expiration is kept when present.
func ParseTransactionBytes(b []byte) (*TransactionKind, TransactionExpiration, error) {
	if len(b) == 0 {
		return nil, TransactionExpiration{}, errors.New("empty transaction bytes")
	}

	data, dataErr := UnmarshalTransactionData(b)
	if dataErr == nil {
		return &data.Kind, data.Expiration, nil
	}

	kind, kindErr := UnmarshalTransactionKind(b)
	if kindErr == nil {
		return kind, TransactionExpiration{}, nil
	}

	return nil, TransactionExpiration{}, fmt.Errorf("not transaction data (%v) nor transaction kind (%v)", dataErr, kindErr)
}

func encodeKind(e *Encoder, k *TransactionKind) {
	e.WriteULEB128(programmableKindTag)
	pt := k.Programmable
	e.WriteULEB128(uint64(len(pt.Inputs)))
	for i := range pt.Inputs {
		encodeCallArg(e, &pt.Inputs[i])
	}
	e.WriteULEB128(uint64(len(pt.Commands)))
	for _, c := range pt.Commands {
		e.WriteULEB128(c.tag())
		c.encode(e)
	}
}

func decodeKind(d *Decoder, k *TransactionKind) error {
	tag, err := d.ReadULEB128()
	if err != nil {
		return err
	}
	if tag != programmableKindTag {
		return fmt.Errorf("unsupported transaction kind %d", tag)
	}

	pt := &ProgrammableTransaction{}
	n, err := d.ReadLength()
	if err != nil {
		return err
	}
	pt.Inputs = make([]CallArg, n)
	for i := range pt.Inputs {
		if err := decodeCallArg(d, &pt.Inputs[i]); err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
	}

	n, err = d.ReadLength()
	if err != nil {
		return err
	}
	pt.Commands = make([]Command, n)
	for i := range pt.Commands {
		if pt.Commands[i], err = decodeCommand(d); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}

	k.Programmable = pt
	return nil
}

func encodeCallArg(e *Encoder, a *CallArg) {
	if a.Object == nil {
		e.WriteULEB128(0)
		e.WriteBytes(a.Pure)
		return
	}
	e.WriteULEB128(1)
	e.WriteULEB128(uint64(a.Object.Kind))
	switch a.Object.Kind {
	case ObjectArgShared:
		e.WriteFixed(a.Object.ObjectID[:])
		e.WriteU64(a.Object.InitialSharedVersion)
		e.WriteBool(a.Object.Mutable)
	default:
		encodeObjectRef(e, &a.Object.Ref)
	}
}

func decodeCallArg(d *Decoder, a *CallArg) error {
	tag, err := d.ReadULEB128()
	if err != nil {
		return err
	}
	switch tag {
	case 0:
		a.Pure, err = d.ReadBytes()
		return err
	case 1:
	default:
		return fmt.Errorf("unsupported call arg %d", tag)
	}

	kind, err := d.ReadULEB128()
	if err != nil {
		return err
	}
	obj := &ObjectArg{Kind: ObjectArgKind(kind)}
	switch obj.Kind {
	case ObjectArgImmOrOwned, ObjectArgReceiving:
		if err := decodeObjectRef(d, &obj.Ref); err != nil {
			return err
		}
	case ObjectArgShared:
		if err := decodeAddress(d, &obj.ObjectID); err != nil {
			return err
		}
		if obj.InitialSharedVersion, err = d.ReadU64(); err != nil {
			return err
		}
		if obj.Mutable, err = d.ReadBool(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported object arg %d", kind)
	}
	a.Object = obj
	return nil
}

func encodeObjectRef(e *Encoder, r *ObjectRef) {
	e.WriteFixed(r.ObjectID[:])
	e.WriteU64(r.Version)
	e.WriteBytes(r.Digest)
}

func decodeObjectRef(d *Decoder, r *ObjectRef) error {
	if err := decodeAddress(d, &r.ObjectID); err != nil {
		return err
	}
	var err error
	if r.Version, err = d.ReadU64(); err != nil {
		return err
	}
	if r.Digest, err = d.ReadBytes(); err != nil {
		return err
	}
	if len(r.Digest) != ObjectDigestLength {
		return fmt.Errorf("invalid object digest length %d", len(r.Digest))
	}
	return nil
}

func decodeAddress(d *Decoder, a *Address) error {
	b, err := d.ReadFixed(domain.AddressLength)
	if err != nil {
		return err
	}
	copy(a[:], b)
	return nil
}

func encodeArgument(e *Encoder, a Argument) {
	e.WriteULEB128(uint64(a.Kind))
	switch a.Kind {
	case ArgumentInput, ArgumentResult:
		e.WriteU16(a.Index)
	case ArgumentNestedResult:
		e.WriteU16(a.Index)
		e.WriteU16(a.ResultIndex)
	}
}

func decodeArgument(d *Decoder) (Argument, error) {
	tag, err := d.ReadULEB128()
	if err != nil {
		return Argument{}, err
	}
	a := Argument{Kind: ArgumentKind(tag)}
	switch a.Kind {
	case ArgumentGasCoin:
	case ArgumentInput, ArgumentResult:
		a.Index, err = d.ReadU16()
	case ArgumentNestedResult:
		if a.Index, err = d.ReadU16(); err == nil {
			a.ResultIndex, err = d.ReadU16()
		}
	default:
		return Argument{}, fmt.Errorf("unsupported argument %d", tag)
	}
	return a, err
}

func encodeArguments(e *Encoder, args []Argument) {
	e.WriteULEB128(uint64(len(args)))
	for _, a := range args {
		encodeArgument(e, a)
	}
}

func decodeArguments(d *Decoder) ([]Argument, error) {
	n, err := d.ReadLength()
	if err != nil {
		return nil, err
	}
	args := make([]Argument, n)
	for i := range args {
		if args[i], err = decodeArgument(d); err != nil {
			return nil, err
		}
	}
	return args, nil
}

func encodeTypeTag(e *Encoder, t *TypeTag) {
	e.WriteULEB128(uint64(t.Kind))
	switch t.Kind {
	case TypeTagVector:
		encodeTypeTag(e, t.Vector)
	case TypeTagStruct:
		e.WriteFixed(t.Struct.Address[:])
		e.WriteString(t.Struct.Module)
		e.WriteString(t.Struct.Name)
		e.WriteULEB128(uint64(len(t.Struct.TypeParams)))
		for i := range t.Struct.TypeParams {
			encodeTypeTag(e, &t.Struct.TypeParams[i])
		}
	}
}

// maxTypeTagDepth bounds nested vector and struct type arguments
const maxTypeTagDepth = 16

func decodeTypeTag(d *Decoder, depth int) (TypeTag, error) {
	if depth > maxTypeTagDepth {
		return TypeTag{}, errors.New("type tag nested too deeply")
	}
	tag, err := d.ReadULEB128()
	if err != nil {
		return TypeTag{}, err
	}
	t := TypeTag{Kind: TypeTagKind(tag)}
	switch t.Kind {
	case TypeTagVector:
		inner, err := decodeTypeTag(d, depth+1)
		if err != nil {
			return TypeTag{}, err
		}
		t.Vector = &inner
	case TypeTagStruct:
		s := &StructTag{}
		if err := decodeAddress(d, &s.Address); err != nil {
			return TypeTag{}, err
		}
		if s.Module, err = d.ReadString(); err != nil {
			return TypeTag{}, err
		}
		if s.Name, err = d.ReadString(); err != nil {
			return TypeTag{}, err
		}
		n, err := d.ReadLength()
		if err != nil {
			return TypeTag{}, err
		}
		s.TypeParams = make([]TypeTag, n)
		for i := range s.TypeParams {
			if s.TypeParams[i], err = decodeTypeTag(d, depth+1); err != nil {
				return TypeTag{}, err
			}
		}
		t.Struct = s
	default:
		if _, ok := primitiveTypeNames[t.Kind]; !ok {
			return TypeTag{}, fmt.Errorf("unsupported type tag %d", tag)
		}
	}
	return t, nil
}

func encodeByteVectors(e *Encoder, vs [][]byte) {
	e.WriteULEB128(uint64(len(vs)))
	for _, v := range vs {
		e.WriteBytes(v)
	}
}

func decodeByteVectors(d *Decoder) ([][]byte, error) {
	n, err := d.ReadLength()
	if err != nil {
		return nil, err
	}
	vs := make([][]byte, n)
	for i := range vs {
		if vs[i], err = d.ReadBytes(); err != nil {
			return nil, err
		}
	}
	return vs, nil
}

func encodeAddresses(e *Encoder, as []Address) {
	e.WriteULEB128(uint64(len(as)))
	for _, a := range as {
		e.WriteFixed(a[:])
	}
}

func decodeAddresses(d *Decoder) ([]Address, error) {
	n, err := d.ReadLength()
	if err != nil {
		return nil, err
	}
	as := make([]Address, n)
	for i := range as {
		if err := decodeAddress(d, &as[i]); err != nil {
			return nil, err
		}
	}
	return as, nil
}

func (c *MoveCall) encode(e *Encoder) {
	e.WriteFixed(c.Package[:])
	e.WriteString(c.Module)
	e.WriteString(c.Function)
	e.WriteULEB128(uint64(len(c.TypeArguments)))
	for i := range c.TypeArguments {
		encodeTypeTag(e, &c.TypeArguments[i])
	}
	encodeArguments(e, c.Arguments)
}

func (c *TransferObjects) encode(e *Encoder) {
	encodeArguments(e, c.Objects)
	encodeArgument(e, c.Address)
}

func (c *SplitCoins) encode(e *Encoder) {
	encodeArgument(e, c.Coin)
	encodeArguments(e, c.Amounts)
}

func (c *MergeCoins) encode(e *Encoder) {
	encodeArgument(e, c.Destination)
	encodeArguments(e, c.Sources)
}

func (c *Publish) encode(e *Encoder) {
	encodeByteVectors(e, c.Modules)
	encodeAddresses(e, c.Dependencies)
}

func (c *MakeMoveVec) encode(e *Encoder) {
	if c.Type == nil {
		e.WriteU8(0)
	} else {
		e.WriteU8(1)
		encodeTypeTag(e, c.Type)
	}
	encodeArguments(e, c.Elements)
}

func (c *Upgrade) encode(e *Encoder) {
	encodeByteVectors(e, c.Modules)
	encodeAddresses(e, c.Dependencies)
	e.WriteFixed(c.Package[:])
	encodeArgument(e, c.Ticket)
}

func decodeCommand(d *Decoder) (Command, error) {
	tag, err := d.ReadULEB128()
	if err != nil {
		return nil, err
	}

	switch tag {
	case 0:
		c := &MoveCall{}
		if err := decodeAddress(d, &c.Package); err != nil {
			return nil, err
		}
		if c.Module, err = d.ReadString(); err != nil {
			return nil, err
		}
		if c.Function, err = d.ReadString(); err != nil {
			return nil, err
		}
		n, err := d.ReadLength()
		if err != nil {
			return nil, err
		}
		c.TypeArguments = make([]TypeTag, n)
		for i := range c.TypeArguments {
			if c.TypeArguments[i], err = decodeTypeTag(d, 0); err != nil {
				return nil, err
			}
		}
		if c.Arguments, err = decodeArguments(d); err != nil {
			return nil, err
		}
		return c, nil
	case 1:
		c := &TransferObjects{}
		if c.Objects, err = decodeArguments(d); err != nil {
			return nil, err
		}
		if c.Address, err = decodeArgument(d); err != nil {
			return nil, err
		}
		return c, nil
	case 2:
		c := &SplitCoins{}
		if c.Coin, err = decodeArgument(d); err != nil {
			return nil, err
		}
		if c.Amounts, err = decodeArguments(d); err != nil {
			return nil, err
		}
		return c, nil
	case 3:
		c := &MergeCoins{}
		if c.Destination, err = decodeArgument(d); err != nil {
			return nil, err
		}
		if c.Sources, err = decodeArguments(d); err != nil {
			return nil, err
		}
		return c, nil
	case 4:
		c := &Publish{}
		if c.Modules, err = decodeByteVectors(d); err != nil {
			return nil, err
		}
		if c.Dependencies, err = decodeAddresses(d); err != nil {
			return nil, err
		}
		return c, nil
	case 5:
		c := &MakeMoveVec{}
		present, err := d.ReadBool()
		if err != nil {
			return nil, err
		}
		if present {
			t, err := decodeTypeTag(d, 0)
			if err != nil {
				return nil, err
			}
			c.Type = &t
		}
		if c.Elements, err = decodeArguments(d); err != nil {
			return nil, err
		}
		return c, nil
	case 6:
		c := &Upgrade{}
		if c.Modules, err = decodeByteVectors(d); err != nil {
			return nil, err
		}
		if c.Dependencies, err = decodeAddresses(d); err != nil {
			return nil, err
		}
		if err := decodeAddress(d, &c.Package); err != nil {
			return nil, err
		}
		if c.Ticket, err = decodeArgument(d); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported command %d", tag)
	}
}

func encodeGasData(e *Encoder, g *GasData) {
	e.WriteULEB128(uint64(len(g.Payment)))
	for i := range g.Payment {
		encodeObjectRef(e, &g.Payment[i])
	}
	e.WriteFixed(g.Owner[:])
	e.WriteU64(g.Price)
	e.WriteU64(g.Budget)
}

func decodeGasData(d *Decoder, g *GasData) error {
	n, err := d.ReadLength()
	if err != nil {
		return err
	}
	g.Payment = make([]ObjectRef, n)
	for i := range g.Payment {
		if err := decodeObjectRef(d, &g.Payment[i]); err != nil {
			return err
		}
	}
	if err := decodeAddress(d, &g.Owner); err != nil {
		return err
	}
	if g.Price, err = d.ReadU64(); err != nil {
		return err
	}
	g.Budget, err = d.ReadU64()
	return err
}

func encodeExpiration(e *Encoder, x *TransactionExpiration) {
	if x.Epoch == nil {
		e.WriteULEB128(0)
		return
	}
	e.WriteULEB128(1)
	e.WriteU64(*x.Epoch)
}

func decodeExpiration(d *Decoder, x *TransactionExpiration) error {
	tag, err := d.ReadULEB128()
	if err != nil {
		return err
	}
	switch tag {
	case 0:
		x.Epoch = nil
		return nil
	case 1:
		epoch, err := d.ReadU64()
		if err != nil {
			return err
		}
		x.Epoch = &epoch
		return nil
	default:
		return fmt.Errorf("unsupported expiration %d", tag)
	}
}
