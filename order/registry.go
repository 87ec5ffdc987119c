package order

// TypeInfo describes how a category is presented.
type TypeInfo struct {
	Category Category `json:"type"`
	Name     string   `json:"name"`
	Label    string   `json:"label"`
}

// ItemTypes lists every concrete category in menu order.
var ItemTypes = []TypeInfo{
	{CategorySet, "ผ้าม่าน", "Curtain set"},
	{CategoryWallpaper, "วอลล์เปเปอร์", "Wallpaper"},
	{CategoryWoodenBlind, "มู่ลี่ไม้", "Wooden blind"},
	{CategoryRollerBlind, "ม่านม้วน", "Roller blind"},
	{CategoryVerticalBlind, "ม่านปรับแสง", "Vertical blind"},
	{CategoryPartition, "ฉากกั้นห้อง", "Partition"},
	{CategoryPleatedScreen, "มุ้งจีบ", "Pleated screen"},
	{CategoryAluminumBlind, "มู่ลี่อลูมิเนียม", "Aluminium blind"},
}

// LouisSetName is the display name used for a set item in the louis style.
const LouisSetName = "ม่านหลุยส์"

// Name returns the Thai display name of c, or the raw tag when unknown.
func (c Category) Name() string {
	for _, t := range ItemTypes {
		if t.Category == c {
			return t.Name
		}
	}
	return string(c)
}

// Label returns the English display label of c, or the raw tag when unknown.
func (c Category) Label() string {
	for _, t := range ItemTypes {
		if t.Category == c {
			return t.Label
		}
	}
	return string(c)
}

// DisplayName returns the Thai name of the item, distinguishing louis sets.
func (it *Item) DisplayName() string {
	if s := it.Set(); s != nil && s.Style == StyleLouis {
		return LouisSetName
	}
	return it.Type.Name()
}
