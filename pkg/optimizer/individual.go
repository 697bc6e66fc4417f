package optimizer

import (
	"sort"
	"strconv"
	"strings"
)

// Individual is a candidate station set. selected ids are kept sorted, so two individuals with the same
// set have the same Key.
type Individual struct {
	selected  []int64
	fitness   float64
	evaluated bool
}

func NewIndividual(ids []int64) *Individual {
	selected := make([]int64, len(ids))
	copy(selected, ids)
	sort.Slice(selected, func(i, j int) bool { return selected[i] < selected[j] })
	return &Individual{selected: selected}
}

// Selected. copy of the selected ids, ascending.
func (ind *Individual) Selected() []int64 {
	out := make([]int64, len(ind.selected))
	copy(out, ind.selected)
	return out
}

func (ind *Individual) Size() int {
	return len(ind.selected)
}

func (ind *Individual) Fitness() float64 {
	return ind.fitness
}

func (ind *Individual) Evaluated() bool {
	return ind.evaluated
}

func (ind *Individual) setFitness(f float64) {
	ind.fitness = f
	ind.evaluated = true
}

func (ind *Individual) Contains(id int64) bool {
	i := sort.Search(len(ind.selected), func(i int) bool { return ind.selected[i] >= id })
	return i < len(ind.selected) && ind.selected[i] == id
}

func (ind *Individual) Key() string {
	var sb strings.Builder
	for i, id := range ind.selected {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(id, 10))
	}
	return sb.String()
}

func (ind *Individual) Equal(other *Individual) bool {
	if len(ind.selected) != len(other.selected) {
		return false
	}
	for i := range ind.selected {
		if ind.selected[i] != other.selected[i] {
			return false
		}
	}
	return true
}

func (ind *Individual) clone() *Individual {
	return &Individual{
		selected:  ind.Selected(),
		fitness:   ind.fitness,
		evaluated: ind.evaluated,
	}
}

// sortByFitness. ascending fitness, ties by key so that truncation is deterministic.
func sortByFitness(pop []*Individual) {
	sort.SliceStable(pop, func(i, j int) bool {
		if pop[i].fitness != pop[j].fitness {
			return pop[i].fitness < pop[j].fitness
		}
		return pop[i].Key() < pop[j].Key()
	})
}
