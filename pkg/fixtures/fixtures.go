// Package fixtures provides a small BoltDB-backed store for named
// transaction fixtures used by the txscope CLI's dev harness: a fixture
// bundles worktop seed amounts and a flat instruction list that the CLI
// decodes into a types.Transaction and hands to interpreter.Run against a
// fresh engine.ReferenceEngine. It has nothing to do with ledger state; it
// exists purely so a developer can replay the same scenario repeatedly
// without re-typing it.
package fixtures

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/cuemby/txscope/pkg/types"
)

var bucketFixtures = []byte("fixtures")

// SeedFungible deposits a fungible amount onto the worktop before the
// fixture's instructions run.
type SeedFungible struct {
	Resource string `json:"resource"`
	Amount   string `json:"amount"`
}

// SeedNonFungible deposits a set of non-fungible units onto the worktop
// before the fixture's instructions run.
type SeedNonFungible struct {
	Resource string   `json:"resource"`
	Ids      []string `json:"ids"`
}

// InstructionSpec is the JSON-friendly shape of one instruction. Call
// arguments are not representable here: a decoded CallFunction or
// CallMethod always carries no Args. Fixtures are a flat scenario format for exercising the
// interpreter's control flow, not a general transaction-manifest decoder
// (that decoder is the upstream validator's job, out of scope per
// spec.md §1).
type InstructionSpec struct {
	Kind             string   `json:"kind"`
	ResourceAddress  string   `json:"resource_address,omitempty"`
	Amount           string   `json:"amount,omitempty"`
	Ids              []string `json:"ids,omitempty"`
	BucketId         uint32   `json:"bucket_id,omitempty"`
	ProofId          uint32   `json:"proof_id,omitempty"`
	PackageAddress   string   `json:"package_address,omitempty"`
	BlueprintName    string   `json:"blueprint_name,omitempty"`
	Function         string   `json:"function,omitempty"`
	ComponentAddress string   `json:"component_address,omitempty"`
	Method           string   `json:"method,omitempty"`
	CodeHex          string   `json:"code_hex,omitempty"`
}

// Fixture is one named, replayable scenario.
type Fixture struct {
	Name            string            `json:"name"`
	SeedFungible    []SeedFungible    `json:"seed_fungible,omitempty"`
	SeedNonFungible []SeedNonFungible `json:"seed_non_fungible,omitempty"`
	Instructions    []InstructionSpec `json:"instructions"`
}

// ToTransaction decodes the fixture's instruction list into a
// types.Transaction ready for interpreter.Run.
func (f *Fixture) ToTransaction() (*types.Transaction, error) {
	instructions := make([]types.ValidatedInstruction, len(f.Instructions))
	for i, spec := range f.Instructions {
		ins, err := spec.toValidated()
		if err != nil {
			return nil, fmt.Errorf("fixture %q, instruction %d: %w", f.Name, i, err)
		}
		instructions[i] = ins
	}
	return &types.Transaction{Instructions: instructions}, nil
}

func (s InstructionSpec) toValidated() (types.ValidatedInstruction, error) {
	ins := types.ValidatedInstruction{
		Kind:             types.InstructionKind(s.Kind),
		ResourceAddress:  types.ResourceAddress(s.ResourceAddress),
		BucketId:         types.BucketId(s.BucketId),
		ProofId:          types.ProofId(s.ProofId),
		PackageAddress:   types.PackageAddress(s.PackageAddress),
		BlueprintName:    s.BlueprintName,
		Function:         s.Function,
		ComponentAddress: types.ComponentAddress(s.ComponentAddress),
		Method:           s.Method,
	}

	if s.Amount != "" {
		amount, err := types.ParseDecimal(s.Amount)
		if err != nil {
			return ins, fmt.Errorf("amount: %w", err)
		}
		ins.Amount = amount
	}

	for _, id := range s.Ids {
		ins.Ids = append(ins.Ids, types.NonFungibleId(id))
	}

	if s.CodeHex != "" {
		code, err := hex.DecodeString(s.CodeHex)
		if err != nil {
			return ins, fmt.Errorf("code_hex: %w", err)
		}
		ins.Code = code
	}

	return ins, nil
}

// Store is a BoltDB-backed fixture library.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the fixture database under dataDir.
func Open(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, "txscope-fixtures.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("fixtures: open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFixtures)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("fixtures: create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts a fixture by name.
func (s *Store) Save(f *Fixture) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFixtures)
		data, err := json.Marshal(f)
		if err != nil {
			return err
		}
		return b.Put([]byte(f.Name), data)
	})
}

// Get loads a fixture by name.
func (s *Store) Get(name string) (*Fixture, error) {
	var f Fixture
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFixtures)
		data := b.Get([]byte(name))
		if data == nil {
			return fmt.Errorf("fixtures: not found: %s", name)
		}
		return json.Unmarshal(data, &f)
	})
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns every fixture's name.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFixtures)
		return b.ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// Delete removes a fixture by name.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketFixtures).Delete([]byte(name))
	})
}
