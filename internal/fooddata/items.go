/*
Package fooddata is the static nutrition knowledge embedded into prompts to
ground the model's calorie estimates. Nothing here changes at runtime.
*/
package fooddata

import "healthcube/internal/models"

func grams(v float64) *float64 { return &v }

// items carries the canonical (Chinese) name, an English name and the aliases
// people commonly use when describing the dish in text or from a photo.
var items = []models.FoodKnowledgeItem{
	// ===== Staples =====
	{ID: "rice_plain", Name: "米饭", EnglishName: "plain rice", Aliases: []string{"白米饭", "白饭", "一碗米饭"}, Category: "staple", Unit: "g", KcalPer100g: 116, ProteinPer100g: grams(2.6), FatPer100g: grams(0.3), CarbPer100g: grams(25.9), TypicalPortionG: 150},
	{ID: "noodles_plain", Name: "面条", EnglishName: "wheat noodles", Aliases: []string{"面条", "拌面", "汤面", "拉面"}, Category: "staple", Unit: "g", KcalPer100g: 110, ProteinPer100g: grams(3.5), FatPer100g: grams(1.0), CarbPer100g: grams(22.0), TypicalPortionG: 200},
	{ID: "mantou", Name: "馒头", EnglishName: "steamed bun", Aliases: []string{"白馒头", "大馒头"}, Category: "staple", Unit: "g", KcalPer100g: 223, ProteinPer100g: grams(7.0), FatPer100g: grams(1.5), CarbPer100g: grams(46.0), TypicalPortionG: 80},
	{ID: "bread_slice", Name: "面包片", EnglishName: "sliced bread", Aliases: []string{"吐司", "白面包"}, Category: "staple", Unit: "g", KcalPer100g: 250, ProteinPer100g: grams(8.0), FatPer100g: grams(3.5), CarbPer100g: grams(45.0), TypicalPortionG: 30},
	{ID: "fried_rice", Name: "蛋炒饭", EnglishName: "fried rice with egg", Aliases: []string{"炒饭", "蛋炒饭", "扬州炒饭"}, Category: "staple", Unit: "g", KcalPer100g: 180, ProteinPer100g: grams(5.0), FatPer100g: grams(6.0), CarbPer100g: grams(26.0), TypicalPortionG: 200},
	{ID: "dumpling_pork", Name: "猪肉饺子", EnglishName: "pork dumplings", Aliases: []string{"饺子", "水饺", "猪肉水饺"}, Category: "staple", Unit: "g", KcalPer100g: 210, ProteinPer100g: grams(9.0), FatPer100g: grams(9.0), CarbPer100g: grams(23.0), TypicalPortionG: 20},

	// ===== Meat, egg, fish =====
	{ID: "chicken_breast", Name: "鸡胸肉", EnglishName: "chicken breast", Aliases: []string{"煎鸡胸肉", "鸡胸肉块", "水煮鸡胸"}, Category: "meat_egg_fish", Unit: "g", KcalPer100g: 165, ProteinPer100g: grams(31.0), FatPer100g: grams(3.6), CarbPer100g: grams(0.0), TypicalPortionG: 120},
	{ID: "chicken_wing_fried", Name: "炸鸡翅", EnglishName: "fried chicken wings", Aliases: []string{"炸鸡", "鸡翅", "香辣鸡翅"}, Category: "meat_egg_fish", Unit: "g", KcalPer100g: 260, ProteinPer100g: grams(18.0), FatPer100g: grams(20.0), CarbPer100g: grams(6.0), TypicalPortionG: 40},
	{ID: "pork_belly", Name: "五花肉", EnglishName: "pork belly", Aliases: []string{"红烧肉", "五花肉块"}, Category: "meat_egg_fish", Unit: "g", KcalPer100g: 395, ProteinPer100g: grams(10.0), FatPer100g: grams(37.0), CarbPer100g: grams(0.0), TypicalPortionG: 50},
	{ID: "beef_lean", Name: "牛肉", EnglishName: "lean beef", Aliases: []string{"瘦牛肉", "牛排"}, Category: "meat_egg_fish", Unit: "g", KcalPer100g: 250, ProteinPer100g: grams(26.0), FatPer100g: grams(15.0), CarbPer100g: grams(0.0), TypicalPortionG: 100},
	{ID: "egg_boiled", Name: "鸡蛋", EnglishName: "boiled egg", Aliases: []string{"水煮蛋", "鸡蛋"}, Category: "meat_egg_fish", Unit: "g", KcalPer100g: 143, ProteinPer100g: grams(13.0), FatPer100g: grams(10.0), CarbPer100g: grams(1.0), TypicalPortionG: 50},
	{ID: "salmon_pan_fried", Name: "三文鱼", EnglishName: "pan-fried salmon", Aliases: []string{"煎三文鱼", "三文鱼排"}, Category: "meat_egg_fish", Unit: "g", KcalPer100g: 208, ProteinPer100g: grams(20.0), FatPer100g: grams(13.0), CarbPer100g: grams(0.0), TypicalPortionG: 100},
	{ID: "shrimp_boiled", Name: "虾仁", EnglishName: "boiled shrimp", Aliases: []string{"虾仁", "白灼虾"}, Category: "meat_egg_fish", Unit: "g", KcalPer100g: 99, ProteinPer100g: grams(24.0), FatPer100g: grams(0.3), CarbPer100g: grams(0.2), TypicalPortionG: 80},

	// ===== Vegetables =====
	{ID: "broccoli_boiled", Name: "西兰花", EnglishName: "broccoli", Aliases: []string{"蒸西兰花", "炒西兰花"}, Category: "vegetable", Unit: "g", KcalPer100g: 36, ProteinPer100g: grams(2.8), FatPer100g: grams(0.4), CarbPer100g: grams(7.0), TypicalPortionG: 80},
	{ID: "tomato_raw", Name: "西红柿", EnglishName: "tomato", Aliases: []string{"番茄", "生西红柿"}, Category: "vegetable", Unit: "g", KcalPer100g: 19, ProteinPer100g: grams(0.9), FatPer100g: grams(0.2), CarbPer100g: grams(4.0), TypicalPortionG: 120},
	{ID: "cucumber_raw", Name: "黄瓜", EnglishName: "cucumber", Aliases: []string{"生黄瓜", "拍黄瓜"}, Category: "vegetable", Unit: "g", KcalPer100g: 15, ProteinPer100g: grams(1.0), FatPer100g: grams(0.2), CarbPer100g: grams(3.0), TypicalPortionG: 100},
	{ID: "potato_boiled", Name: "土豆", EnglishName: "potato", Aliases: []string{"马铃薯", "土豆块"}, Category: "vegetable", Unit: "g", KcalPer100g: 80, ProteinPer100g: grams(2.0), FatPer100g: grams(0.1), CarbPer100g: grams(18.0), TypicalPortionG: 100},

	// ===== Fruit =====
	{ID: "apple_raw", Name: "苹果", EnglishName: "apple", Aliases: []string{"红苹果", "青苹果"}, Category: "fruit", Unit: "g", KcalPer100g: 52, ProteinPer100g: grams(0.3), FatPer100g: grams(0.2), CarbPer100g: grams(14.0), TypicalPortionG: 150},
	{ID: "banana_raw", Name: "香蕉", EnglishName: "banana", Aliases: []string{"香蕉", "一根香蕉"}, Category: "fruit", Unit: "g", KcalPer100g: 93, ProteinPer100g: grams(1.3), FatPer100g: grams(0.3), CarbPer100g: grams(23.0), TypicalPortionG: 100},
	{ID: "orange_raw", Name: "橙子", EnglishName: "orange", Aliases: []string{"甜橙", "橙子瓣"}, Category: "fruit", Unit: "g", KcalPer100g: 47, ProteinPer100g: grams(0.9), FatPer100g: grams(0.1), CarbPer100g: grams(12.0), TypicalPortionG: 150},

	// ===== Dairy =====
	{ID: "milk_whole", Name: "全脂牛奶", EnglishName: "whole milk", Aliases: []string{"牛奶", "一杯牛奶"}, Category: "dairy", Unit: "ml", KcalPer100g: 64, ProteinPer100g: grams(3.2), FatPer100g: grams(3.6), CarbPer100g: grams(4.8), TypicalPortionG: 250},
	{ID: "yogurt_plain", Name: "酸奶", EnglishName: "plain yogurt", Aliases: []string{"原味酸奶", "常温酸奶"}, Category: "dairy", Unit: "g", KcalPer100g: 70, ProteinPer100g: grams(3.0), FatPer100g: grams(3.0), CarbPer100g: grams(8.0), TypicalPortionG: 200},

	// ===== Drinks =====
	{ID: "coke", Name: "可乐", EnglishName: "cola", Aliases: []string{"可乐", "零度可乐", "汽水"}, Category: "drink", Unit: "ml", KcalPer100g: 42, ProteinPer100g: grams(0.0), FatPer100g: grams(0.0), CarbPer100g: grams(10.6), TypicalPortionG: 330},
	{ID: "milk_tea_sweet", Name: "奶茶", EnglishName: "sweet milk tea", Aliases: []string{"珍珠奶茶", "奶茶", "全糖奶茶"}, Category: "drink", Unit: "ml", KcalPer100g: 80, ProteinPer100g: grams(1.2), FatPer100g: grams(2.0), CarbPer100g: grams(14.0), TypicalPortionG: 500},
	{ID: "orange_juice", Name: "橙汁饮料", EnglishName: "orange juice drink", Aliases: []string{"橙汁", "果汁饮料"}, Category: "drink", Unit: "ml", KcalPer100g: 45, ProteinPer100g: grams(0.5), FatPer100g: grams(0.0), CarbPer100g: grams(11.0), TypicalPortionG: 250},

	// ===== Desserts =====
	{ID: "cake_cream", Name: "奶油蛋糕", EnglishName: "cream cake", Aliases: []string{"蛋糕", "生日蛋糕", "奶油蛋糕"}, Category: "dessert", Unit: "g", KcalPer100g: 330, ProteinPer100g: grams(6.0), FatPer100g: grams(20.0), CarbPer100g: grams(32.0), TypicalPortionG: 80},
	{ID: "cookie_biscuit", Name: "曲奇饼干", EnglishName: "cookies", Aliases: []string{"饼干", "曲奇", "小饼干"}, Category: "dessert", Unit: "g", KcalPer100g: 480, ProteinPer100g: grams(6.0), FatPer100g: grams(23.0), CarbPer100g: grams(64.0), TypicalPortionG: 20},
	{ID: "ice_cream", Name: "冰淇淋", EnglishName: "ice cream", Aliases: []string{"冰激凌", "雪糕"}, Category: "dessert", Unit: "g", KcalPer100g: 200, ProteinPer100g: grams(3.5), FatPer100g: grams(11.0), CarbPer100g: grams(23.0), TypicalPortionG: 80},
}

// Items returns a copy of the full knowledge table.
func Items() []models.FoodKnowledgeItem {
	out := make([]models.FoodKnowledgeItem, len(items))
	copy(out, items)
	return out
}
