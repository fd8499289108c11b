package quotes

// QuoteSeed is one entry of the built-in master library.
type QuoteSeed struct {
	OriginalText    string
	CleanedTextEn   string
	CleanedTextZhTw string
	CleanedTextZhCn string
}

// DefaultSystemQuotes is inserted once when the system library is empty.
var DefaultSystemQuotes = []QuoteSeed{
	{"Discipline aligns intent with action.", "Discipline aligns intent with action.", "紀律使意圖與行動一致。", "纪律使意图与行动一致。"},
	{"Clarity is the foundation of sound judgment.", "Clarity is the foundation of sound judgment.", "清晰是健全判斷的基礎。", "清晰是健全判断的基础。"},
	{"Patience transforms pressure into progress.", "Patience transforms pressure into progress.", "耐心將壓力轉化為進步。", "耐心将压力转化为进步。"},
	{"Integrity preserves trust over time.", "Integrity preserves trust over time.", "誠信使信任得以長久維持。", "诚信使信任得以长久维持。"},
	{"Consistency turns effort into reliability.", "Consistency turns effort into reliability.", "一致性使努力成為可靠。", "一致性使努力成为可靠。"},
	{"Preparation reduces the cost of uncertainty.", "Preparation reduces the cost of uncertainty.", "準備降低不確定性的成本。", "准备降低不确定性的成本。"},
	{"A steady mind guides steady outcomes.", "A steady mind guides steady outcomes.", "穩定的心引導穩定的結果。", "稳定的心引导稳定的结果。"},
	{"Respect for time is respect for life.", "Respect for time is respect for life.", "尊重時間就是尊重生命。", "尊重时间就是尊重生命。"},
	{"Deliberate practice builds durable confidence.", "Deliberate practice builds durable confidence.", "刻意練習建立持久的自信。", "刻意练习建立持久的自信。"},
	{"Accountability converts promises into results.", "Accountability converts promises into results.", "承擔責任使承諾化為成果。", "承担责任使承诺化为成果。"},
	{"Simplicity reveals what truly matters.", "Simplicity reveals what truly matters.", "簡單揭示真正重要的事。", "简单揭示真正重要的事。"},
	{"Order in the mind creates order in the day.", "Order in the mind creates order in the day.", "心中有序，日子自然有序。", "心中有序，日子自然有序。"},
	{"Excellence begins with attention to detail.", "Excellence begins with attention to detail.", "卓越始於對細節的關注。", "卓越始于对细节的关注。"},
	{"Calm responses preserve difficult conversations.", "Calm responses preserve difficult conversations.", "冷靜回應能維持艱難對話。", "冷静回应能维持艰难对话。"},
	{"A clear standard makes fairness possible.", "A clear standard makes fairness possible.", "清楚的標準使公平成為可能。", "清楚的标准使公平成为可能。"},
	{"Measured words carry lasting influence.", "Measured words carry lasting influence.", "謹慎的言語帶來長久影響。", "谨慎的言语带来长久影响。"},
	{"Steadiness outlasts excitement.", "Steadiness outlasts excitement.", "穩健勝過短暫的興奮。", "稳健胜过短暂的兴奋。"},
	{"Long-term vision steadies short-term choices.", "Long-term vision steadies short-term choices.", "長遠視野穩定短期選擇。", "长远视野稳定短期选择。"},
	{"Reliability is a quiet form of leadership.", "Reliability is a quiet form of leadership.", "可靠是一種沉靜的領導力。", "可靠是一种沉静的领导力。"},
	{"Good judgment grows from clear thinking.", "Good judgment grows from clear thinking.", "良好判斷源於清晰思考。", "良好判断源于清晰思考。"},
	{"Humility keeps learning open.", "Humility keeps learning open.", "謙遜使學習持續開放。", "谦逊使学习持续开放。"},
	{"Precision is a form of respect.", "Precision is a form of respect.", "精準是一種尊重。", "精准是一种尊重。"},
	{"A prepared mind welcomes opportunity.", "A prepared mind welcomes opportunity.", "準備好的心迎接機會。", "准备好的心迎接机会。"},
	{"Dignity is preserved through principled action.", "Dignity is preserved through principled action.", "尊嚴在有原則的行動中得以維持。", "尊严在有原则的行动中得以维持。"},
	{"Courtesy strengthens professional relationships.", "Courtesy strengthens professional relationships.", "禮貌能強化專業關係。", "礼貌能强化专业关系。"},
	{"Focus completes what intention begins.", "Focus completes what intention begins.", "專注完成意圖所開始的事。", "专注完成意图所开始的事。"},
	{"Quality is sustained by consistent care.", "Quality is sustained by consistent care.", "品質由持續的用心維繫。", "品质由持续的用心维系。"},
	{"Quiet diligence outperforms noisy ambition.", "Quiet diligence outperforms noisy ambition.", "安靜的勤勉勝過喧鬧的野心。", "安静的勤勉胜过喧闹的野心。"},
	{"Sound decisions require reflection and evidence.", "Sound decisions require reflection and evidence.", "穩健的決策需要反思與證據。", "稳健的决策需要反思与证据。"},
	{"Commitment is proven in ordinary days.", "Commitment is proven in ordinary days.", "承諾在平凡的日子裡得到證明。", "承诺在平凡的日子里得到证明。"},
	{"Excellence is built by the next right step.", "Excellence is built by the next right step.", "卓越由下一個正確的步驟累積而成。", "卓越由下一个正确的步骤累积而成。"},
	{"Orderly work reduces unnecessary conflict.", "Orderly work reduces unnecessary conflict.", "有序的工作減少不必要的衝突。", "有序的工作减少不必要的冲突。"},
	{"Clear priorities simplify action.", "Clear priorities simplify action.", "清楚的優先順序簡化行動。", "清楚的优先顺序简化行动。"},
	{"Steady habits protect progress.", "Steady habits protect progress.", "穩定的習慣守護進展。", "稳定的习惯守护进展。"},
	{"Learning is strengthened by disciplined repetition.", "Learning is strengthened by disciplined repetition.", "紀律的反覆使學習更扎實。", "纪律的反复使学习更扎实。"},
	{"A strong foundation makes change sustainable.", "A strong foundation makes change sustainable.", "堅實的基礎使改變得以持續。", "坚实的基础使改变得以持续。"},
	{"Thoughtfulness transforms routine into excellence.", "Thoughtfulness transforms routine into excellence.", "用心使日常成為卓越。", "用心使日常成为卓越。"},
	{"Self-control protects long-term goals.", "Self-control protects long-term goals.", "自制守護長期目標。", "自制守护长期目标。"},
	{"A respectful tone preserves dignity.", "A respectful tone preserves dignity.", "尊重的語氣維持尊嚴。", "尊重的语气维持尊严。"},
	{"Reliability strengthens every team.", "Reliability strengthens every team.", "可靠使每個團隊更強。", "可靠使每个团队更强。"},
	{"A clear conscience allows deep focus.", "A clear conscience allows deep focus.", "清明的良心帶來深度專注。", "清明的良心带来深度专注。"},
	{"Standards determine outcomes.", "Standards determine outcomes.", "標準決定結果。", "标准决定结果。"},
	{"Deliberate pace prevents careless error.", "Deliberate pace prevents careless error.", "有意的節奏避免粗心錯誤。", "有意的节奏避免粗心错误。"},
	{"Clear agreements prevent confusion.", "Clear agreements prevent confusion.", "清楚的約定避免混亂。", "清楚的约定避免混乱。"},
	{"Respect for others begins with self-respect.", "Respect for others begins with self-respect.", "尊重他人始於自尊。", "尊重他人始于自尊。"},
	{"The best plans are supported by disciplined execution.", "The best plans are supported by disciplined execution.", "最佳的計畫仰賴有紀律的執行。", "最佳的计划仰赖有纪律的执行。"},
	{"Stable processes protect quality.", "Stable processes protect quality.", "穩定的流程守護品質。", "稳定的流程守护品质。"},
	{"Careful preparation enables calm execution.", "Careful preparation enables calm execution.", "周密準備讓執行更從容。", "周密准备让执行更从容。"},
	{"Decisive action follows clear principles.", "Decisive action follows clear principles.", "果斷的行動遵循清晰的原則。", "果断的行动遵循清晰的原则。"},
	{"A well-ordered plan reduces needless effort.", "A well-ordered plan reduces needless effort.", "有序的計畫減少不必要的耗費。", "有序的计划减少不必要的耗费。"},
	{"Trust is earned through consistent conduct.", "Trust is earned through consistent conduct.", "信任在一致的行為中建立。", "信任在一致的行为中建立。"},
	{"Preparedness turns pressure into performance.", "Preparedness turns pressure into performance.", "準備充分讓壓力化為表現。", "准备充分让压力化为表现。"},
	{"Steady execution makes strategy real.", "Steady execution makes strategy real.", "穩定的執行使策略成真。", "稳定的执行使策略成真。"},
	{"Order and clarity reduce wasted effort.", "Order and clarity reduce wasted effort.", "秩序與清晰減少浪費的努力。", "秩序与清晰减少浪费的努力。"},
	{"Sound standards produce sound results.", "Sound standards produce sound results.", "良好的標準帶來良好的結果。", "良好的标准带来良好的结果。"},
}
