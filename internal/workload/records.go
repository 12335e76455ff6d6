package workload

import "strconv"

// RecordDataLen is the length of the integer sequence carried by each record.
const RecordDataLen = 10

// Record is a synthetic entry that exists only to occupy heap memory.
type Record struct {
	ID    int
	Value string
	Data  []int
}

// BuildSyntheticRecords allocates count records. Record i has ID i, the
// decimal string of i*42 as its value and the sequence 0..9 as its data.
func BuildSyntheticRecords(count int) []Record {
	if count <= 0 {
		return []Record{}
	}
	records := make([]Record, count)
	for i := range records {
		data := make([]int, RecordDataLen)
		for j := range data {
			data[j] = j
		}
		records[i] = Record{
			ID:    i,
			Value: strconv.Itoa(i * 42),
			Data:  data,
		}
	}
	return records
}
