package functional

import (
	"errors"
	"testing"
)

func TestResultBasicOperations(t *testing.T) {
	boom := errors.New("boom")

	ok := Ok(5)
	if !ok.IsOk() || ok.IsErr() {
		t.Fatal("Ok should be ok")
	}
	if v, err := ok.Get(); v != 5 || err != nil {
		t.Fatalf("Get() = %v, %v", v, err)
	}
	if !ok.ToOption().IsSome() {
		t.Error("ToOption of Ok should be Some")
	}

	bad := Err[int](boom)
	if !bad.IsErr() {
		t.Fatal("Err should be an error")
	}
	if !errors.Is(bad.Error(), boom) {
		t.Errorf("Error() = %v", bad.Error())
	}
	if _, err := bad.Get(); !errors.Is(err, boom) {
		t.Errorf("Get() error = %v", err)
	}
	if bad.ToOption().IsSome() {
		t.Error("ToOption of Err should be None")
	}

	defer func() {
		if recover() == nil {
			t.Error("Unwrap on Err should panic")
		}
	}()
	bad.Unwrap()
}
