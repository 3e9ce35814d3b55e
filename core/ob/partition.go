package ob

// Partition sizes for the reduced upload files.
const (
	TestSize         = 2
	TestExtendedSize = 20
)

// HeadTail keeps the first ceil(k/2) and last floor(k/2) blocks, in order.
// When k meets or exceeds the list length the whole list comes back, so a
// partition never invents or duplicates blocks.
func HeadTail(blocks []OB, k int) []OB {
	if k <= 0 {
		return []OB{}
	}
	if k >= len(blocks) {
		return blocks
	}
	head := (k + 1) / 2
	tail := k - head
	out := make([]OB, 0, k)
	out = append(out, blocks[:head]...)
	out = append(out, blocks[len(blocks)-tail:]...)
	return out
}
