package merger

import "i18next-parser/core/catalog"

// Transfer copies keys of source into a clone of target, recursing where
// both sides hold objects. Keys already present in target keep their value.
// Neither input is mutated.
func Transfer(source, target catalog.Object) catalog.Object {
	result := target.CloneObject()
	for key, value := range source {
		existing, ok := result[key]
		if !ok {
			result[key] = value.Clone()
			continue
		}
		srcObj, srcIsObj := value.(catalog.Object)
		dstObj, dstIsObj := existing.(catalog.Object)
		if srcIsObj && dstIsObj {
			result[key] = Transfer(srcObj, dstObj)
		}
	}
	return result
}
