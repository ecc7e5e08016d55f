package modern

import (
	"strconv"

	"github.com/bytedance/sonic/ast"
	"github.com/viant/phpjson"
)

type sonicEncoder struct{}

func (sonicEncoder) encode(value phpjson.Value) ([]byte, error) {
	node := sonicNode(value)
	return node.MarshalJSON()
}

func sonicNode(value phpjson.Value) ast.Node {
	switch value.Kind() {
	case phpjson.KindBool:
		return ast.NewBool(value.Bool())
	case phpjson.KindInt:
		return ast.NewNumber(strconv.FormatInt(value.Int(), 10))
	case phpjson.KindFloat:
		return ast.NewNumber(strconv.FormatFloat(value.Float(), 'g', -1, 64))
	case phpjson.KindText:
		return ast.NewString(value.Text())
	case phpjson.KindSequence:
		items := value.Items()
		nodes := make([]ast.Node, len(items))
		for i, item := range items {
			nodes[i] = sonicNode(item)
		}
		return ast.NewArray(nodes)
	case phpjson.KindRecord, phpjson.KindArray:
		entries := value.Entries()
		if value.IsList() {
			nodes := make([]ast.Node, len(entries))
			for i := range entries {
				nodes[i] = sonicNode(entries[i].Value)
			}
			return ast.NewArray(nodes)
		}
		pairs := make([]ast.Pair, len(entries))
		for i := range entries {
			pairs[i] = ast.Pair{Key: entries[i].Key.String(), Value: sonicNode(entries[i].Value)}
		}
		return ast.NewObject(pairs)
	}
	return ast.NewNull()
}
