package rating

import (
	"sort"

	"github.com/uyouii/ninebox-rating/model"
)

// Tabulate counts every distinct rating. Entries come out ascending whatever the sample order.
func Tabulate(sample *model.RatingSample) *model.FrequencyTable {
	res := &model.FrequencyTable{
		Total:   sample.Len(),
		Entries: []model.FrequencyEntry{},
	}
	if sample.IsEmpty() {
		return res
	}

	counts := map[float64]int{}
	for _, value := range sample.Values {
		counts[value]++
	}

	for value, count := range counts {
		res.Entries = append(res.Entries, model.FrequencyEntry{
			Rating:  value,
			Count:   count,
			Percent: float64(count) / float64(res.Total) * 100,
		})
	}
	sort.Slice(res.Entries, func(i, j int) bool {
		return res.Entries[i].Rating < res.Entries[j].Rating
	})
	return res
}
