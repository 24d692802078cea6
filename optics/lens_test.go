package optics_test

import (
	"testing"

	opterrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/optics"
	"github.com/authcorp/optics/tree"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deepDoc() *tree.Object {
	return tree.NewObject(
		tree.F("a", tree.NewObject(tree.F("b", tree.NewObject(tree.F("c",
			tree.NewObject(tree.F("d", tree.NewObject(tree.F("e", "hello"))))))))),
		tree.F("z", tree.NewObject(tree.F("keep", true))),
	)
}

func person(name string, age int64) *tree.Object {
	return tree.NewObject(
		tree.F("name", name),
		tree.F("age", age),
		tree.F("address", tree.NewObject(tree.F("street", "123 Main"), tree.F("city", "NYC"))),
	)
}

func TestLensDeepPath(t *testing.T) {
	doc := deepDoc()
	l := optics.Path("a", "b", "c", "d", "e")

	got, err := l.Get(doc)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	updated, err := l.Modify(doc, func(tree.Value) tree.Value { return "world" })
	require.NoError(t, err)

	got, err = l.Get(updated)
	require.NoError(t, err)
	assert.Equal(t, "world", got)

	got, err = l.Get(doc)
	require.NoError(t, err)
	assert.Equal(t, "hello", got, "original should be unchanged")

	z, _ := doc.Get("z")
	z2, _ := updated.(*tree.Object).Get("z")
	assert.True(t, tree.Same(z, z2), "sibling off the focus path must be shared")
}

func TestLensBasicOperations(t *testing.T) {
	t.Run("Get retrieves value", func(t *testing.T) {
		got, err := optics.Prop("name").Get(person("Alice", 30))
		require.NoError(t, err)
		assert.Equal(t, "Alice", got)
	})

	t.Run("Set creates new structure", func(t *testing.T) {
		p := person("Alice", 30)
		updated, err := optics.Prop("name").Set(p, "Bob")
		require.NoError(t, err)
		name, _ := updated.(*tree.Object).Get("name")
		assert.Equal(t, "Bob", name)
		name, _ = p.Get("name")
		assert.Equal(t, "Alice", name, "original should be unchanged")
	})

	t.Run("Modify applies function", func(t *testing.T) {
		updated, err := optics.Prop("age").Modify(person("Alice", 30), func(v tree.Value) tree.Value {
			return v.(int64) + 1
		})
		require.NoError(t, err)
		age, _ := updated.(*tree.Object).Get("age")
		assert.Equal(t, int64(31), age)
	})

	t.Run("Set keeps key order", func(t *testing.T) {
		updated, err := optics.Prop("name").Set(person("Alice", 30), "Bob")
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "age", "address"}, updated.(*tree.Object).Keys())
	})

	t.Run("Identity focuses the root", func(t *testing.T) {
		got, err := optics.Identity().Get(int64(42))
		require.NoError(t, err)
		assert.Equal(t, int64(42), got)

		set, err := optics.Identity().Set(int64(42), int64(100))
		require.NoError(t, err)
		assert.Equal(t, int64(100), set)
	})
}

func TestLensComposition(t *testing.T) {
	city := optics.Prop("address").Compose(optics.Prop("city"))
	p := person("Alice", 30)

	got, err := city.Get(p)
	require.NoError(t, err)
	assert.Equal(t, "NYC", got)

	updated, err := city.Set(p, "LA")
	require.NoError(t, err)
	got, err = city.Get(updated)
	require.NoError(t, err)
	assert.Equal(t, "LA", got)
}

func TestLensFailures(t *testing.T) {
	doc := deepDoc()

	tests := []struct {
		name string
		lens optics.Lens
		code opterrors.ErrorCode
		step string
		at   string
	}{
		{"missing key", optics.Path("a", "x"), opterrors.ErrCodeMissingKey, ".x", "$.a"},
		{"scalar where object expected", optics.Path("a", "b", "c", "d", "e", "f"), opterrors.ErrCodeTypeMismatch, ".f", "$.a.b.c.d.e"},
		{"index into object", optics.Prop("a").Index(0), opterrors.ErrCodeTypeMismatch, "[0]", "$.a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.lens.Get(doc)
			require.Error(t, err)
			assert.True(t, opterrors.IsCode(err, tt.code), "got %v", err)

			oe, ok := opterrors.AsType[*opterrors.OpticError](err)
			require.True(t, ok)
			assert.Equal(t, tt.step, oe.Step)
			assert.Equal(t, tt.at, oe.Details["at"])

			_, err = tt.lens.Set(doc, "x")
			assert.True(t, opterrors.IsCode(err, tt.code), "Set must fail like Get, got %v", err)
		})
	}
}

func TestIndexLens(t *testing.T) {
	arr := tree.NewArray(int64(1), int64(2), int64(3))

	got, err := optics.Index(1).Get(arr)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)

	updated, err := optics.Index(1).Set(arr, int64(42))
	require.NoError(t, err)
	got, _ = updated.(*tree.Array).At(1)
	assert.Equal(t, int64(42), got)
	got, _ = arr.At(1)
	assert.Equal(t, int64(2), got, "original should be unchanged")

	t.Run("out of range get fails", func(t *testing.T) {
		_, err := optics.Index(3).Get(arr)
		assert.ErrorIs(t, err, opterrors.ErrMissingIndex)
		_, err = optics.Index(-1).Get(arr)
		assert.ErrorIs(t, err, opterrors.ErrMissingIndex)
	})

	t.Run("out of range set fails by default", func(t *testing.T) {
		_, err := optics.Index(7).Set(arr, int64(0))
		assert.ErrorIs(t, err, opterrors.ErrMissingIndex)
	})

	t.Run("out of range set is a no-op when ignored", func(t *testing.T) {
		out, err := optics.IndexWith(7, optics.OutOfRangeIgnore).Set(arr, int64(0))
		require.NoError(t, err)
		assert.True(t, tree.Same(arr, out))

		_, err = optics.IndexWith(7, optics.OutOfRangeIgnore).Get(arr)
		assert.ErrorIs(t, err, opterrors.ErrMissingIndex, "get stays strict")
	})
}

func TestIsoLens(t *testing.T) {
	celsius := optics.Prop("temp").Iso("fahrenheit",
		func(v tree.Value) (tree.Value, error) {
			c, _ := tree.Number(v)
			return c*9/5 + 32, nil
		},
		func(v tree.Value) (tree.Value, error) {
			f, _ := tree.Number(v)
			return (f - 32) * 5 / 9, nil
		},
	)
	doc := tree.NewObject(tree.F("temp", 100.0))

	got, err := celsius.Get(doc)
	require.NoError(t, err)
	assert.Equal(t, 212.0, got)

	updated, err := celsius.Set(doc, 32.0)
	require.NoError(t, err)
	temp, _ := updated.(*tree.Object).Get("temp")
	assert.Equal(t, 0.0, temp)
	assert.Equal(t, "$.temp~fahrenheit", celsius.String())
}

func TestIsoReturningSentinelError(t *testing.T) {
	num := optics.Prop("n").Iso("num",
		func(v tree.Value) (tree.Value, error) {
			if _, ok := tree.Number(v); !ok {
				return nil, opterrors.ErrTypeMismatch
			}
			return v, nil
		},
		func(v tree.Value) (tree.Value, error) { return v, nil },
	)
	doc := tree.NewObject(tree.F("n", "seven"))

	_, err := num.Get(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, opterrors.ErrTypeMismatch)

	oe, ok := opterrors.AsType[*opterrors.OpticError](err)
	require.True(t, ok)
	assert.Equal(t, "~num", oe.Step)
	assert.Equal(t, "$.n", oe.Details["at"])

	assert.Empty(t, opterrors.ErrTypeMismatch.Step, "shared error value must stay unannotated")
	assert.Nil(t, opterrors.ErrTypeMismatch.Details)

	_, err = optics.Prop("n").Index(0).Get(doc)
	oe, ok = opterrors.AsType[*opterrors.OpticError](err)
	require.True(t, ok)
	assert.Equal(t, "[0]", oe.Step, "later failures carry their own step")
}

func TestLensGetSetIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Get(Set(source, value)) == value", prop.ForAll(
		func(name string, age int64, newName string) bool {
			lens := optics.Prop("name")
			updated, err := lens.Set(person(name, age), newName)
			if err != nil {
				return false
			}
			got, err := lens.Get(updated)
			return err == nil && got == newName
		},
		gen.AnyString(),
		gen.Int64(),
		gen.AnyString(),
	))

	properties.Property("Set(source, Get(source)) == source by reference", prop.ForAll(
		func(name string, age int64) bool {
			lens := optics.Path("address", "city")
			p := person(name, age)
			city, err := lens.Get(p)
			if err != nil {
				return false
			}
			updated, err := lens.Set(p, city)
			return err == nil && tree.Same(updated, p)
		},
		gen.AnyString(),
		gen.Int64(),
	))

	properties.Property("Set(Set(source, a), b) == Set(source, b)", prop.ForAll(
		func(name, a, b string) bool {
			lens := optics.Prop("name")
			p := person(name, 1)
			once, err1 := lens.Set(p, b)
			first, err2 := lens.Set(p, a)
			twice, err3 := lens.Set(first, b)
			return err1 == nil && err2 == nil && err3 == nil && tree.Equal(once, twice)
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
