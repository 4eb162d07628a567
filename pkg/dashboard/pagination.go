package dashboard

// PageSize is the number of responses shown per results page
const PageSize = 10

// TotalPages returns ceil(total/PageSize)
func TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// PageRange returns the zero-based inclusive offsets of a 1-based page
func PageRange(page int) (start, end int) {
	return (page - 1) * PageSize, page*PageSize - 1
}

// PageNumbers lists every page number, 1..totalPages
func PageNumbers(totalPages int) []int {
	res := make([]int, 0, totalPages)
	for i := 1; i <= totalPages; i++ {
		res = append(res, i)
	}
	return res
}
