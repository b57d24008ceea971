// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"
)

// decodeHexPubkey decodes a hex-encoded compressed public key literal.
func decodeHexPubkey(hexKey string) ([]byte, error) {
	return hex.DecodeString(hexKey)
}

// mainNetPreminePubkeys, testNetPreminePubkeys, and regTestPreminePubkeys
// are the hex-encoded, round-robin rotation of compressed secp256k1
// public keys each network's hard-fork premine window pays to, one
// pubkey per block within [BTGHeight, BTGHeight+BTGPremineWindow).
var mainNetPreminePubkeys = []string{
	"028abd95108065315eb0d5a4ad75c1afe31039afd5e260f177a134bbe352347375", "0243d1f1298b08f83463f45a8a53a099d20bd0bf0dfc0e4f4168da44e573f4088e", "036d152f919bdcd877b912e773851def55f8266106e8bdf31537e093efcf5425c3", "0381cb19542c5c7b95f2b01f1504bbe4cafdf40cce32f7e5d7bb0b3525b35f3561",
	"02fcb0c546338f217d01e10700e99d4777659a2bb8d949161fbbdbc5a6802c87b2", "0251ff7846708dc5b4d6f9b1996882649f8fde8c75b22e99e0f06b57580a2eaa2a", "024910058d1db2c60a8d97719067cfc449d762729da30149456b2491c5f4cc9422", "033125aab0d71e8dca2a4f8ea184118ae9d39993c4889998f6aa4c23a7b556b31f",
	"02ecfebfae8cfaf52a865ef891b62237b98794a053c1a1c9613516c327ba5605ca", "033d929cff7d694778c9184c11a2bc82e6332143f03b27d326cbd59be0e82475dc", "03f49d91d89b43376844efb777512d0c09eb3626d073929c22596f190f585c8a31", "02bcf19f37fbbf2009d591c458fe7fb7a9846137b77b0876530c32ae319de64b88",
	"037b29498ffa9af5a9c15e1d50a5e9a131e5da8f9206b58d09fc90781b7858d511", "03ba58e4ab1be9dda480c0212bf5f2d4c328b21c788e2378316297ab5723b323b6", "031b1f1f28a37bffa7cd3c1771e4ee80b1ba79bf9cf711bca395baaf3ce9332437", "03bf22d33caf671e6957c2aadf1a81312ec0fdd3f5cc57b1ee1b1ca1c20ea6d657",
	"0311c10d2fc27951fbd2a1d90ebf637b6a0caf4de4cba249fa67a8f31bec717af1", "02c212b7871242340c692925b20572b35f24852f5c3a9c4481e1988cb81c074a55", "03c8ddc5c513bcf68fdc2c60d9b3193b05570772988665c5f119c0bce0be63cd38", "03383888c922af7dfb20af0663c77ac38ff887688b6dab8b3e3e8f6f082e464d49",
	"02ef242a6f2244658aa0e82cb929f8257e083843f048a4597844dedeef766e3bde", "028f277dc05af3f54151d7c6183c8cc02873fa970b0c46b01cfcfbe92c8213fdd2", "029e47d940ab6be06ef3f20199912395a8501f0d310c1a47cd4036790b949447e4", "03fd453aad7dcae8e38811850bb1c1cf478c553d88c5ff732e45074a2a06db4084",
	"02738941d5a5d0de0cf38de75b9153418c0dc4f67a1b8111233c844cc4e3117b6c", "02c35feba5eac52c2771e81d84bca029aac48de5136386a24f231839f61ede365e", "02405eaa7ae4c3e027bb99083fbd36571ba6a9cf262d683a56750ccb4796af02bd", "039eba24a33a40bf816a7baeffd4fda767c996c66914ccbd1edc054a9578aa6ec6",
	"036353accb471bf041c0b4fbb5ec2ba8620ee59a8f77a9e191625c62e663619589", "03d91b0cd8bd1650d2773576cbd8957bda5dd43b2190787d216c00f811922d94ef", "0381fe1bbab45a76c683fcd6913e56e62bab8b996b958739fc2ccdc967f4923a45", "03572652b55661318feaa2926f9bad5dc83d1f4b1d695e1d44ddb52af9f2a7949e",
	"0280cd063d33c25174fa5e8d56b5c5368403fca2a6c130b158899466c99e8d501c", "021e29a66e58d1e020eeef8318b1cf04a8784faca45b298113398706fda66e9a09", "02b2fa47c6e509c1eabc4b74cb0d8e366c6943c619c42b0125ed76ee4de4b8f555", "03d147a35f12bd03174693b52f2ec4bf91bfd6e5a4b76353fe1209bd8dc6c18687",
	"03b3e560af2590418a8ae84a2e699fc7d1bf4f45275bd951a123c8196819b69e96", "020457dd9249b4648e5e21e234592b83b27d95c0797b14994eca8cbeb5b8dee6b6", "02dc995337c1b6fd1ef8ef80cdfb179145bb923cf1640c1bb99e7ffec5ee7960c8", "037693493f2edb38b0a317159a8dd0326b34db8cd0e08ef4cfb84c8dc2714e521c",
	"02990ecf6d5753df5607076351d0d4d9fc205cf47762ca213616f62318db8207a1", "0280db8dc9387fc231559093db088e57c1a3a8418058ae462f430d4b3ee9780e61", "034551be04f031042e6fbf4ac4264863c6840dce5c097b3580760aec1eac77f66f", "02c3c43089d02fce24038f15f0e3bc32be0356756ce208777e0492ddd7803ad4bc",
	"02ffae6076f39fa2a640cef469f8db992b5a009999a98424bbc5539bc9defb69d7", "02c271bf33dace298904f64a58d74793b25b2ffa232e6c861a5b252d0bbf8b6fe7", "021fecfea903e49e6f48334797c86a56f6e044a32b011e4e41f46ff9667eaed9f1", "0304a3f540288e32670884dd4fdc3e7e7721d97d658ae95ba0ba5238db2b09d311",
	"0292cbf4fd4fab8be2142801dc7882b40534cc8d0cc512a76c977735a19a0bfc28", "02eb2576927ead7877ac6383d33ca70ae9997112ce1da4170baff132bf70d85f45", "02d79cbe60a73689e09bcdbee2763cb5f90220c0cd6f30f17e3912ad1a25a4aafd", "03100e89525898fcf0ba5cf466faebe774d2efabe2c6dbb055e7c7068168398510",
	"0378d4542e712a74d4557295c7ef5db80bf9d1c64fd61bb96e32fff847189233c9", "0381a539f9998f6a4cd7654939b3ceca7e284a049d09cdd0a924904b533d370c83", "02fd68227c6efabe769f22ab77ce9187b35ec52231d035b626b05f11639b270b81", "03f6d3403a0e0bd073123ef424a745a5f6517a17ba0f2883ba5290023423780cce",
	"03f332071803d15c38714ba105de01dbfa7351c80de952206ece4470e1c44143ff", "0349df5703d06c402cb5c16ada38f9064ff21b32f6549538372f2ddc752fa5f0f2", "02036ac926e01e926633a5c67943294de0e1400fcad76c31e07128187f9e74584b", "02714b838178a521a75b682f05de1bd75adc6722931dc1ba1216c9145d2cba158a",
	"029d18aa7764adc57bb87220a46b0f5794a13384c782bbae0330a9a101fa0815e8", "03c0d9fa8036a2fe796f0c48d6d8b6786859fc0109d7883ac973b6f91c6ec3536c", "03aaaf2371f037edc3afeda1d49613e8e91621630246ef872d9b46db67237aeed4", "022e1b1e0f96787a99a00f430a05a6350092d53b0f5e7e911bb8449370bd01a30c",
	"02e4bf20e1ff643645f1e7496f309f8cbb0cbf6aeb788d213eb34c41e37db6dcfb", "02479c9579d7affe72bdfa465a26f9350c75977d9db9770688949f390ae411f43a", "03713984aaefa28d745a4cfdd29b61c1917d24ffe411b7de331716cece89e8f4b4", "022a93f0c7c3d0183817bfcc1ec6a39ca012fafba169273428ebcaa7204b212b77",
	"03ea925c21971c961dcbfa852e456afa68d3408094e0885f227f663a040e4a8aa4", "02b7ba86e01af55739c5f4384e66161463bab827a94454d469f4f94cb91fa0390c", "035284162fd681e8128b2e1d4ea8a8be044db4f90dcc15f52ffd30197211291d85", "03a7487bfc36c8e6cb5e3dc616ac75a8ccaf66459d8ac7402e0b5f9d745d33e068",
	"032c753ff6e63271256f9b6704a44e3ff697de7060e0d8819bf0120e1c6cb1d2dc", "03f3bb73e3bc0264348615bf614d35f908c333dcfa519de0d5d7038b5753dee8df", "02d9f0234822268672df178f527b9a7031f7c6e98b7eb3f4991595d0edfaa8ad16", "02fa465fa8fe3aafeaf116d537439e458096e6e262f74c301f51aa4a48024fb976",
	"038cc3f504646bf9f7b6c1cd0890b0d42e0cd2d8334b1aee9af60469440f1621fe", "03c9bce245db14bcfd8b467c0fe3975a7c4f66be6a5c29e90177fd7dd5047c2a62", "02af647043663859831f0fee45f080115ad008554cb7afb41c50ef8fa5e3025e0c", "02d558c1c04d4c18f62b7620c29ffdfe0b6d85171442bd3e617384b9f402dffba2",
	"03023e0b7663815ce50d175b2a75950aeed7fc297e9ca3bf1a96d0bd1ca3480238", "0307c75b200d6d2120c61789167069683b881f09352f350e48328778963b465bb7", "025ba2c202ea111e715d08eda7a26c1d20279e61bcf05e91ba3513b7fcbb907941", "026b498a6957cb0ddd7379e9c4b4bf32517ebe033a4886719114be418930cc2d2b",
	"032cbc6d571c5d6fc6818ae2bfafebfe951a439a3bdac473e1d6c675b9aba98404", "02162129972a97194451eaddb503044f618c32817a55557e9b0a78416ed60c5441", "03f1fc845bc29294b5b2754834328d8e37c8770cab575bd710143c4ea08d116bfb", "02dc00685bf9de890662fe413b034abbb38f11f9fbc80f1c73bfa0435e06688c5b",
	"02ae78a6ca2e25bb0704357a680d0b335009f09219ad7638ea4a323d6c4f10afb4", "02e637b2ed10ec60edad483b34f0c1148dd16b59d0de5ec7f9a6657b937f4a66b5", "034dae5e0a6c87dafbb35f1be5f1f96f32bf0ebdc6912085e2fcfd2d1162de125d", "030a9a59131bb9f4c6495f0b613882c2cbcef32dd452a7f5e38c00c57e50a2a98f",
	"02d39949eb53baf273644e7aeca784926c6b40ff94a3cd4191fae468ec463a4a85", "02ded4e4b934140a6ede7e2bd509c57e502a0a6820ffdd96eb7e018e2b140211e6", "02f2cd991b4a447f47abfef0a7ec330354b18660635ffa4b0474ba12a98ac12a73", "02c6f694e4e7c920bd1510d0029e5e61fba7a15371496357f53ea9e34a34612612",
	"02ffe95074550c8a594909a2c8f393758c988220f951d584dd66fe5f3e9a9013dd", "03a4db2e42139749228a42b96c198be34e64895130d25ee53773f9b573ff70913d", "03bf33290cd659fc9d1069136af51bb4611fd8abbc7c552b9e25af8411979f64a4", "02286c2b4834bd976650b6d8757e2b7355dfe3247f737783176940bb376f6f4088",
}

var testNetPreminePubkeys = []string{
	"03dd8efa43ceac0b50bc667f8b84bed3de78cd2d4581ed6a871affef08d8626e6b", "029607c91b0019e6297102611399e172a89bfe674fabcc38c14aa972e9caa9755a", "02375c001becef3c3023d49d59481cef64f2e1ef32c5e7500d84e062a6a78d9797", "036d3e61a820c1a14355252626ea114747178d676332913d60598c06d5207f3813",
	"03b71f54b4436a18d751b49ad39b16159807424c4b6582631dbf9777d7a2121f25", "03fd99f34f98ddfcddf71a30afb63603fdab2ff7b5317de6272685842a288062e4", "027cdef4a0c32b72672677feea80e249e7510b1bf64a287058081cc2083f3e874c", "02779d8380f45f19ef513deb86727140b653914f45bcd66cde5785d94e98a4ea62",
	"0379ea002727afe109178e7b185023345154bdc6f94a9e24e6b4515a33ef94b70d", "03df9590af95d33e21dbca20546d1859a9298c91eaa3c75e0bc5dd98d6fac975cb", "032b19cf42fdd2d27a3ce65bb066a27e59e46ef4be0117d63d127f23554f68b343", "03dfcc37bd4c6f3069ea47ae4d6612d19a467db0eba03e5cff0ee5c1db15168a71",
	"037d8f4a91613ddc33b5f3916105edc80e9e2e12d512d8def4a172a71f8be72c7f", "030a0d33b36068b1030cb153d24ad6c67f476c8f800f4bdfa917df71aeb59c66e1", "030b968e01f9fd45cf16c7dd12319388c8a3b09489df16a60067bd64fd50009d3a", "02dd535da5dd420b72282391b06ef0ee4ffd1a42e3d88dfd1abe90fb8e3d1512f6",
	"03825497ccd03962518012ac9ef3d8671be54795280a3c62a0ead1b4274d2ee1dc", "02ea9b0a745ddb9b8421f32ac42082aa588ab8517f069a350be96811f025c19b97", "03f6ef8955b2dfcff2b805c7a0e22636ac563bc6e5efb9e088ae522d77ec64f5dc", "02143729b21ba324b4e43b66dd61ade28ece4eb3ac4bf9e2a7873ca4c700f542a4",
	"023ca8f6bb28e659ce8aed5ab53e0575e555226b1222aefadb7bc4698a13bd8521", "03a247f7ed8527e5f09ae354f2b32f7807e2fbb337cdd7a112e9721049b8d63fa5", "02f71b6380ecbdd37486f7e177946bd8d839994280a62bc9bfdb598db551cece23", "028b444477ee0267a8a0e5885fd4c5b30419378f687090641da79540f995b09608",
	"023e3fe17ad4031382c689e40130ef0f9013fa17697d3277bb9db48cd55d4fd624", "03b0fff0864ebb846fcb54f492135359fb6f11b488a00c1188058899bce2517727", "02a8da0db27d5c6d52d517ecca5288c8e6a402a2d13c4a5165bb7062344f960b8c", "026002560e65cdd8e2c8d0aa52329994cb655263902c811a7a54671d1ceffc9ff4",
	"0262db182cefe4807a7b3aa95df9eb21d5d4347661c8874c17e08c3ac838c5b67a", "0264a4c8aed7141f9ca346772c9f65a0efa615bb5e4690c26812e26d6b4b70e90a", "02b3c7a24514e5e8468691e19d6c1b9532e2517272059f8165a0d7c98e08fd1bf4", "02bfba321d353dff4fe8bb1717043afc2fcecae24ebdc17ad375f013339666fe5c",
	"026a972f47cd3724ad8de5db6b28605a2d9cd0720921eee6fdad2152d40ef2c4b7", "0222476d4a7e8019ca744b393acae0909d2e41b1bdc1d11247c89862c66eeb603e", "02e6fd364985ede80a64b35d9002ecd9a91af2c7f7cff6030f117d827b6be6db5f", "02758a7463e3defa18c7974b4d138afda7bff729df33384a8d6d21e844aac27409",
	"029bced43755766117d8ef8ab16a29eac9389ff51b28cbdd4b37448c69e74f68a6", "03b0a27ebd4dcf7b9a1c624c87340eb5f08bd834254f2a7d45af29b60ceeaa9564", "0387770f38a7441d6bfd25f60828750b3137a8d28f855b7e645975ce5601c550ea", "030d1569dfc1a11b8f95b9b64c4bd30055bcb0c32b9fbe8aed284fb8a51375bf42",
}

var regTestPreminePubkeys = []string{
	"022df9dd6c032bb01871e0a46ccc305bd80b32daf2230fb917725539a0bbebca19", "03317341a33373f319a3520662faa85a0231d3259a287d06cbfa943f620c1e7471", "02f591d3ffbcd00a988acd1c35dd1fdba3d33833fb7a9132633a83a0e2363edc15", "03642391def4438c925feaa3c6f9fef65a5295a100f69afb9aa90934e2cbefc6c5",
	"02b024335bbed2f74b2133e7a515ce0089c48fafb20413de6769a2817cc2a9a289",
}

// mustParsePreminePubkeys decodes each hex string in pubkeys as a
// secp256k1 public key, panicking on the first one that
// doesn't parse. It exists to fail a network's factory function loudly
// at init time rather than let a malformed literal surface later as a
// silent premine-validation mismatch.
func mustParsePreminePubkeys(pubkeys []string) {
	for _, hexKey := range pubkeys {
		raw, err := decodeHexPubkey(hexKey)
		if err != nil {
			panic(err)
		}
		if _, err := btcec.ParsePubKey(raw); err != nil {
			panic(err)
		}
	}
}

// IsPremineAddressScript reports whether script is the pay-to-pubkey
// script the premine rotation expects to see in the coinbase output at
// height, which must lie within the premine window
// [BTGHeight, BTGHeight+BTGPremineWindow). Calling it outside that
// window is a programmer error and panics, matching the precondition
// the original node enforces with assert().
func (p *Params) IsPremineAddressScript(script []byte, height int32) bool {
	first := p.Consensus.BTGHeight
	last := first + p.Consensus.BTGPremineWindow
	if height < first || height >= last {
		panic("chaincfg: IsPremineAddressScript called outside the premine window")
	}

	block := height - first
	pubkeys := p.PreminePubkeys
	hexKey := pubkeys[int(block)%len(pubkeys)]

	raw, err := decodeHexPubkey(hexKey)
	if err != nil {
		panic(err)
	}

	builder := txscript.NewScriptBuilder()
	builder.AddData(raw)
	builder.AddOp(txscript.OP_CHECKSIG)
	target, err := builder.Script()
	if err != nil {
		panic(err)
	}

	if len(target) != len(script) {
		return false
	}
	for i := range target {
		if target[i] != script[i] {
			return false
		}
	}
	return true
}
