package fortune

// CopyType tags freeform entries with a display category. The id lists come
// from the content owners and some ids appear in more than one list; the
// reverse lookup iterates back-to-front so later categories win overlaps
// (e.g. 37 resolves to "先停一下"). Do not dedupe the lists here — the
// overlap is the content team's call, not ours.
type CopyType struct {
	ID          string
	Label       string
	Description string
	EntryIDs    []int
}

var copyTypes = []CopyType{
	{
		ID:          "letItBe",
		Label:       "就这样吧",
		Description: "我现在不太想改变什么。",
		EntryIDs:    []int{1, 5, 8, 9, 14, 16, 21, 26, 30, 35, 36, 38},
	},
	{
		ID:          "stuck",
		Label:       "有点卡住",
		Description: "我知道在想什么，但不知道怎么办。",
		EntryIDs:    []int{2, 3, 7, 10, 15, 19, 22, 27, 29, 34, 37},
	},
	{
		ID:          "noExplain",
		Label:       "不想解释",
		Description: "我不想说清楚，也不想交代。",
		EntryIDs:    []int{11, 12, 13, 18, 24, 31},
	},
	{
		ID:          "stillCarrying",
		Label:       "其实已经在扛",
		Description: "我不是没做事，只是有点撑。",
		EntryIDs:    []int{4, 6, 17, 20, 23, 28, 33},
	},
	{
		ID:          "pause",
		Label:       "先停一下",
		Description: "我想慢一点，再看看。",
		EntryIDs:    []int{25, 32, 37},
	},
}

// CopyTypeByEntryID resolves a freeform entry id to its category.
// Last-defined category wins when an id appears in multiple lists.
func CopyTypeByEntryID(entryID int) (CopyType, bool) {
	for i := len(copyTypes) - 1; i >= 0; i-- {
		for _, id := range copyTypes[i].EntryIDs {
			if id == entryID {
				return copyTypes[i], true
			}
		}
	}
	return CopyType{}, false
}
