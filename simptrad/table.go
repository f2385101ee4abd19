package simptrad

// entry pairs a Simplified spelling with its Traditional rendering.
type entry struct {
	Simp string
	Trad string
}

// rawTable holds every recognized Simplified->Traditional mapping. Entries
// are drawn from the characters in the bundled phrase-store seed corpus
// (store/seed.go) plus their common single-character and short-phrase
// variants; this is a representative sample, not the full Unicode Han
// simplification set (the OpenCC data tables themselves are not in the
// examples pack). Identity entries (character unchanged between scripts)
// are included too, since the greedy matcher needs a hit at every prefix
// length to avoid falling back to character-by-character early.
var rawTable = []entry{
	{"你好", "你好"}, {"你", "你"}, {"好", "好"},
	{"今天", "今天"}, {"今", "今"}, {"天", "天"},
	{"谢谢", "謝謝"}, {"谢", "謝"},
	{"再见", "再見"}, {"再", "再"}, {"见", "見"},
	{"中国", "中國"}, {"中", "中"}, {"国", "國"},
	{"北京", "北京"}, {"北", "北"}, {"京", "京"},
	{"朋友", "朋友"}, {"朋", "朋"}, {"友", "友"},
	{"学生", "學生"}, {"学", "學"}, {"生", "生"},
	{"老师", "老師"}, {"老", "老"}, {"师", "師"},
	{"工作", "工作"}, {"工", "工"}, {"作", "作"},
	{"电脑", "電腦"}, {"电", "電"}, {"脑", "腦"},
	{"手机", "手機"}, {"手", "手"}, {"机", "機"},
	{"啊啊", "啊啊"}, {"啊", "啊"},
	{"阿紫", "阿紫"}, {"阿", "阿"}, {"紫", "紫"},
	{"制", "制"}, {"之", "之"}, {"知", "知"},
	{"是", "是"}, {"的", "的"}, {"我", "我"}, {"他", "他"}, {"她", "她"},
	{"人", "人"}, {"大", "大"}, {"小", "小"},
	{"一", "一"}, {"二", "二"}, {"三", "三"}, {"不", "不"},
	{"有", "有"}, {"了", "了"}, {"在", "在"},
	{"这", "這"}, {"那", "那"}, {"来", "來"}, {"去", "去"},
	{"说", "說"}, {"吃", "吃"}, {"喝", "喝"}, {"爱", "愛"}, {"想", "想"},
	{"为什么", "為什麼"}, {"什么", "什麼"}, {"什", "什"}, {"么", "麼"}, {"为", "為"},
	{"现在", "現在"}, {"现", "現"},
	{"时候", "時候"}, {"时", "時"}, {"候", "候"},
	{"觉得", "覺得"}, {"觉", "覺"}, {"得", "得"},
	{"经济", "經濟"}, {"经", "經"}, {"济", "濟"},
	{"说话", "說話"}, {"话", "話"},
	{"他们", "他們"}, {"我们", "我們"}, {"你们", "你們"}, {"们", "們"},
	{"没有", "沒有"}, {"没", "沒"},
	{"从", "從"}, {"会", "會"}, {"对", "對"}, {"应", "應"},
	{"开", "開"}, {"关", "關"}, {"还", "還"}, {"只", "只"}, {"后", "後"},
	{"让", "讓"}, {"走", "走"}, {"起", "起"}, {"过", "過"}, {"道", "道"},
	{"都", "都"}, {"里", "裡"}, {"长", "長"}, {"难", "難"},
	{"门", "門"}, {"车", "車"}, {"书", "書"}, {"买", "買"}, {"东", "東"},
	{"看", "看"}, {"自", "自"}, {"年", "年"},
}

// maxLen is the greedy matcher's window, in runes.
var maxLen = func() int {
	max := 0
	for _, e := range rawTable {
		n := len([]rune(e.Simp))
		if n > max {
			max = n
		}
	}
	return max
}()
