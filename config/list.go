package config

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/signadot/keepconf/node"
)

// getList reads a list section. Elements that cannot be read as want
// are dropped and reported once for the list.
func getList[T any](f *File, path string, want node.Type, as func(node.Value) (T, error)) ([]T, bool) {
	list := f.root.ListSection(path)
	if list == nil {
		return nil, false
	}
	if list.ElemType != node.NoType && !node.Compatible(list.ElemType, want) {
		f.emitf("%s: %s list read as %s", path, list.ElemType, want)
	}
	vals := list.Values()
	res := make([]T, 0, len(vals))
	dropped := 0
	for _, v := range vals {
		x, err := as(v)
		if err != nil {
			dropped++
			continue
		}
		res = append(res, x)
	}
	if dropped != 0 {
		f.emitf("%s: dropped %d of %d elements not readable as %s", path, dropped, len(vals), want)
	}
	return res, true
}

func (f *File) GetBoolList(path string) ([]bool, bool) {
	return getList(f, path, node.BoolType, node.Value.AsBool)
}

func (f *File) GetIntList(path string) ([]int32, bool) {
	return getList(f, path, node.IntType, node.Value.AsInt)
}

func (f *File) GetLongList(path string) ([]int64, bool) {
	return getList(f, path, node.LongType, node.Value.AsLong)
}

func (f *File) GetDecimalList(path string) ([]*apd.Decimal, bool) {
	return getList(f, path, node.DecimalType, node.Value.AsDecimal)
}

func (f *File) GetDoubleList(path string) ([]float64, bool) {
	return getList(f, path, node.FloatType, node.Value.AsFloat)
}

func (f *File) GetStringList(path string) ([]string, bool) {
	return getList(f, path, node.StringType, asString)
}

func GetEnumList[E fmt.Stringer](f *File, path string, values []E) ([]E, bool) {
	return getList(f, path, node.SymbolType, asEnum(values))
}
