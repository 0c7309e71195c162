package domain

// Task は1つの生成単位です。1タスク = 1出力画像 = 1プロンプト断片。
// カタログ定義後は不変で、ディスパッチごとに読み取られるだけです。
type Task struct {
	ID       string // カタログ内の識別子（例: "clear_golden"）
	Filename string // 出力ファイル名（例: "incity_clear_golden.png"）
	Fragment string // シーン保存テンプレートに差し込むプロンプト断片
	Label    string // 表示用ラベル（任意）
	Color    string // 表示用カラーコード（任意）
}

// Group は固定順序のタスク集合です。バッチ操作の展開単位になります。
type Group struct {
	Name  string
	Label string
	Tasks []Task
}

// Scene はシーンファミリー（タワー正面 / 都市景観）ごとの設定です。
// プロンプトの接頭辞と保存ガードはシーン単位で固定されます。
type Scene struct {
	Name         string
	Label        string
	AspectRatio  string
	OutputDir    string
	PromptPrefix string
	PromptGuard  string
	Groups       []Group
}

// VariantRequest は1タスク分の生成要求です。タスクごとに新規構築され、再利用しません。
type VariantRequest struct {
	Prompt      string
	Reference   []byte // バッチ内で共有される読み取り専用の参照画像
	AspectRatio string
	ImageSize   string
}

// VariantResult はアダプター境界で正規化済みの生成結果です。
type VariantResult struct {
	Data     []byte
	MimeType string
}

// TaskOutcome は1タスクの最終結果です。失敗はタスク局所で、バッチ全体には伝播しません。
type TaskOutcome struct {
	Task Task
	Path string // 保存先（成功時のみ）
	Err  error
}
