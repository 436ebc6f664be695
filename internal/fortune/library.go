package fortune

// Static content tables. Authored, never mutated; selection is uniform per
// draw. Traditional entries carry the classic 上/中/下 top line, freeform
// entries get their display title from the copy-type reverse lookup, and
// decision entries carry a yes/no/wait verdict.

var traditionalEntries = []Entry{
	{
		ID: 1, TopLine: "第一签 · 上签", ThemeWord: "路通",
		Favorable: []string{"出行", "开工"}, Unfavorable: []string{"反复确认"},
		DetailText: "这条路是通的。慢一点也没关系。方向没有问题，可行。",
	},
	{
		ID: 2, TopLine: "第二签 · 上签", ThemeWord: "顺行",
		Favorable: []string{"继续", "保持节奏"}, Unfavorable: []string{"加码"},
		DetailText: "事情正在往好的方向走。你不需要再多用力，顺着现在的状态即可。",
	},
	{
		ID: 3, TopLine: "第三签 · 上签", ThemeWord: "局开",
		Favorable: []string{"前行", "表态"}, Unfavorable: []string{"犹豫"},
		DetailText: "局面已经打开，不必反复确认。信号是清楚的，可前行。",
	},
	{
		ID: 4, TopLine: "第四签 · 上签", ThemeWord: "得位",
		Favorable: []string{"尝试", "落子"}, Unfavorable: []string{"空想"},
		DetailText: "你现在站的位置是对的。下一步不会太难，基础已经具备。",
	},
	{
		ID: 5, TopLine: "第五签 · 中签", ThemeWord: "待时",
		Favorable: []string{"观察", "准备"}, Unfavorable: []string{"强推"},
		DetailText: "现在不是不行，只是还差一点条件。需要再等等，宜缓。",
	},
	{
		ID: 6, TopLine: "第六签 · 中签", ThemeWord: "减扰",
		Favorable: []string{"收心", "减法"}, Unfavorable: []string{"多线"},
		DetailText: "你想得有点多，反而不好判断。先减少干扰，稳住。",
	},
	{
		ID: 7, TopLine: "第七签 · 中签", ThemeWord: "观望",
		Favorable: []string{"弹性", "记录"}, Unfavorable: []string{"站队"},
		DetailText: "局势还在摇摆，不急着站队。保持弹性，观望。",
	},
	{
		ID: 8, TopLine: "第八签 · 中签", ThemeWord: "缓行",
		Favorable: []string{"调整方式"}, Unfavorable: []string{"硬闯"},
		DetailText: "现在推进会有点吃力，但不是完全不行。需要调整方式，缓行。",
	},
	{
		ID: 9, TopLine: "第九签 · 中签", ThemeWord: "听疑",
		Favorable: []string{"放慢", "自问"}, Unfavorable: []string{"硬答"},
		DetailText: "你心里其实没那么确定，这点值得重视。听一听犹豫，放慢。",
	},
	{
		ID: 10, TopLine: "第十签 · 下签", ThemeWord: "先停",
		Favorable: []string{"休息"}, Unfavorable: []string{"赶进度"},
		DetailText: "你现在有点着急，越快反而越累。强行推进不合适，先停一下。",
	},
}

var freeformEntries = []Entry{
	{ID: 1, ThemeWord: "拉伸之始签", DetailText: "你现在还在试水阶段。不用急着定型。本签不要求结果。"},
	{ID: 2, ThemeWord: "未开始之签", DetailText: "你想了很多，但还没动。这本身也算一种状态。允许停在这里。"},
	{ID: 3, ThemeWord: "刚刚开始之签", DetailText: "你已经迈出第一步了。别急着判断对不对。过程比结论重要。"},
	{ID: 4, ThemeWord: "半路之签", DetailText: "你走到一半，有点不确定。这是很常见的感觉。不需要立刻解决。"},
	{ID: 5, ThemeWord: "卡住之签", DetailText: "你不是不想动，是不知道怎么动。可以先放着。卡住不是失败。"},
	{ID: 6, ThemeWord: "偏离之签", DetailText: "事情已经和最初想的不一样了。这不一定是坏事。允许偏离。"},
	{ID: 7, ThemeWord: "犹豫之签", DetailText: "你在几个选项之间来回。不选也是一种选择。无需立刻决定。"},
	{ID: 8, ThemeWord: "低效之签", DetailText: "你觉得自己没什么产出。但你并没有停。状态不等于价值。"},
	{ID: 9, ThemeWord: "反复修改之签", DetailText: "你改了很多次。可能还没准备好结束。未完成是允许的。"},
	{ID: 10, ThemeWord: "想放弃之签", DetailText: "你开始怀疑要不要继续。这不是第一次，也不会是最后一次。怀疑是过程的一部分。"},
	{ID: 11, ThemeWord: "继续尝试之签", DetailText: "你还是想再试一次。哪怕理由不充分。好奇心有效。"},
	{ID: 12, ThemeWord: "只是玩玩之签", DetailText: "你并不想把这件事变严肃。这样也很好。不需要升级意义。"},
	{ID: 13, ThemeWord: "暂停之签", DetailText: "你想先停一下。不是放弃。暂停是合法状态。"},
	{ID: 14, ThemeWord: "重新开始之签", DetailText: "你想换一种方式再来。不必完全推翻。重来不等于失败。"},
	{ID: 15, ThemeWord: "没想清楚之签", DetailText: "你现在说不清自己在干嘛。这并不妨碍继续。模糊是允许的。"},
	{ID: 16, ThemeWord: "慢慢来之签", DetailText: "你开始接受节奏变慢。事情反而顺了一点。慢不等于停。"},
	{ID: 17, ThemeWord: "不想解释之签", DetailText: "你不想向别人说明。这很正常。不是所有事都要被理解。"},
	{ID: 18, ThemeWord: "还在路上之签", DetailText: "你还没到任何结论。但你没有偏离。在路上就够了。"},
}

var decisionEntries = []Entry{
	{ID: 1, TopLine: "去做", ThemeWord: "去做", Decision: DecisionYes, DetailText: "现在就是合适的时候。"},
	{ID: 2, TopLine: "可以试", ThemeWord: "可以试", Decision: DecisionYes, DetailText: "试错的成本比你想的低。"},
	{ID: 3, TopLine: "再等等", ThemeWord: "再等等", Decision: DecisionWait, DetailText: "条件还差一点，先让它多走一步。"},
	{ID: 4, TopLine: "先放放", ThemeWord: "先放放", Decision: DecisionWait, DetailText: "不急着定，放一晚再看。"},
	{ID: 5, TopLine: "算了吧", ThemeWord: "算了吧", Decision: DecisionNo, DetailText: "你其实已经知道答案了。"},
	{ID: 6, TopLine: "别去", ThemeWord: "别去", Decision: DecisionNo, DetailText: "这次不值得，留着力气。"},
}

// Library returns the static entry table for a track.
func Library(t Track) []Entry {
	switch t {
	case TrackTraditional:
		return traditionalEntries
	case TrackFreeform:
		return freeformEntries
	case TrackDecision:
		return decisionEntries
	}
	return nil
}

// Draw selects one entry uniformly at random from the track's library.
func Draw(t Track, rng RNG) (DrawResult, error) {
	lib := Library(t)
	if lib == nil {
		return DrawResult{}, ErrTrackUnknown
	}
	if len(lib) == 0 {
		return DrawResult{}, ErrEmptyLibrary
	}
	return DrawResult{Track: t, Entry: lib[rng.Intn(len(lib))]}, nil
}
