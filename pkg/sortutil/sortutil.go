package sortutil

import (
	"sort"
	"strings"
)

// Direction indica a direção da ordenação
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Comparator compara dois registros: negativo, zero ou positivo
type Comparator[T any] func(a, b T) int

// ValueFunc extrai o valor de ordenação de um registro para uma chave.
// Deve retornar nil para chaves desconhecidas.
type ValueFunc[T any] func(record T, key string) interface{}

// NameFunc extrai os campos de nome de um registro, na ordem
// (itemName, name)
type NameFunc[T any] func(record T) (itemName, name string)

// ParseDirection normaliza a direção informada pela interface
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(Descending)) {
		return Descending
	}
	return Ascending
}

// BuildComparator retorna um comparador para a chave e direção informadas.
// Chaves desconhecidas produzem um comparador neutro (todos iguais).
func BuildComparator[T any](direction Direction, key string, value ValueFunc[T]) Comparator[T] {
	if direction == Descending {
		return func(a, b T) int {
			return descendingCompare(value(a, key), value(b, key))
		}
	}
	return func(a, b T) int {
		return -descendingCompare(value(a, key), value(b, key))
	}
}

// SortStable ordena uma cópia dos registros de forma estável: empates
// são resolvidos pelo índice original, nunca pela estabilidade
// incidental do algoritmo de ordenação.
func SortStable[T any](records []T, cmp Comparator[T]) []T {
	type indexed struct {
		record T
		index  int
	}

	stabilized := make([]indexed, len(records))
	for i, r := range records {
		stabilized[i] = indexed{record: r, index: i}
	}

	sort.Slice(stabilized, func(i, j int) bool {
		order := cmp(stabilized[i].record, stabilized[j].record)
		if order != 0 {
			return order < 0
		}
		return stabilized[i].index < stabilized[j].index
	})

	sorted := make([]T, len(stabilized))
	for i, s := range stabilized {
		sorted[i] = s.record
	}
	return sorted
}

// FilterByName filtra registros por substring (case-insensitive) sobre o
// campo itemName, com fallback para name. Consulta vazia retorna a
// entrada inalterada; deve ser aplicado depois da ordenação.
func FilterByName[T any](records []T, query string, names NameFunc[T]) []T {
	if query == "" {
		return records
	}

	needle := strings.ToLower(query)
	filtered := make([]T, 0, len(records))
	for _, r := range records {
		itemName, name := names(r)
		label := itemName
		if label == "" {
			label = name
		}
		if strings.Contains(strings.ToLower(label), needle) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// descendingCompare segue a ordenação natural do valor: -1 quando b < a,
// 1 quando b > a, 0 nos demais casos (incluindo tipos não comparáveis)
func descendingCompare(a, b interface{}) int {
	if a == nil || b == nil {
		return 0
	}

	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0
		}
		if bv < av {
			return -1
		}
		if bv > av {
			return 1
		}
		return 0
	default:
		af, aok := toFloat(a)
		bf, bok := toFloat(b)
		if !aok || !bok {
			return 0
		}
		if bf < af {
			return -1
		}
		if bf > af {
			return 1
		}
		return 0
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
